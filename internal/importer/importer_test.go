package importer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metadata-tools/rdfsync/internal/itemlog"
	"github.com/metadata-tools/rdfsync/pkg/model"
	"github.com/metadata-tools/rdfsync/pkg/rdf"
)

const testTitlePred = "http://purl.org/dc/terms/title"

func init() {
	model.Register(&model.Descriptor{
		Name: "ImporterTestModel",
		Fields: []model.FieldSpec{
			{
				Header:    "Title",
				Path:      model.PathRef{Outer: "title"},
				Predicate: rdf.NewNamedNode(testTitlePred),
				Codec:     &model.LiteralCodec{},
			},
		},
	})
}

// fakeRepo serves graphs from memory and records submitted patches
type fakeRepo struct {
	graphs  map[string]string // uri -> N-Triples
	fetched []string
	patches map[string]string // uri -> update text
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		graphs:  make(map[string]string),
		patches: make(map[string]string),
	}
}

func (f *fakeRepo) FetchGraph(_ context.Context, uri string) (*rdf.Graph, error) {
	f.fetched = append(f.fetched, uri)
	body, ok := f.graphs[uri]
	if !ok {
		return nil, fmt.Errorf("no such resource: %s", uri)
	}
	triples, err := rdf.ParseNTriples(body)
	if err != nil {
		return nil, err
	}
	g := rdf.NewGraph()
	for _, t := range triples {
		g.Add(t)
	}
	return g, nil
}

func (f *fakeRepo) SubmitPatch(_ context.Context, uri, update string) error {
	if strings.Contains(update, "FAIL") {
		return fmt.Errorf("rejected patch for %s", uri)
	}
	f.patches[uri] = update
	return nil
}

// fakeLog is an in-memory completion log
type fakeLog struct {
	entries map[string]itemlog.Entry
}

func newFakeLog() *fakeLog {
	return &fakeLog{entries: make(map[string]itemlog.Entry)}
}

func (f *fakeLog) Completed(uri string) (bool, error) {
	e, ok := f.entries[uri]
	if !ok {
		return false, nil
	}
	return e.Status == itemlog.StatusUpdated || e.Status == itemlog.StatusUnchanged, nil
}

func (f *fakeLog) Record(entry itemlog.Entry) error {
	f.entries[entry.URI] = entry
	return nil
}

func titleGraph(uri string, values ...string) string {
	var b strings.Builder
	for _, v := range values {
		fmt.Fprintf(&b, "<%s> <%s> %s .\n", uri, testTitlePred, rdf.NewLiteral(v))
	}
	return b.String()
}

func TestRun_UpdatedRow(t *testing.T) {
	repo := newFakeRepo()
	uri := "http://repo.example.org/item1"
	repo.graphs[uri] = titleGraph(uri, "A")

	csv := "URI,INDEX,Title\n" + uri + ",,A|B\n"
	im := New(repo, nil, nil)

	result, err := im.Run(context.Background(), strings.NewReader(csv), Options{Model: "ImporterTestModel"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Unchanged)
	assert.Equal(t, 0, result.Failed)

	update, ok := repo.patches[uri]
	require.True(t, ok, "expected a patch for %s", uri)
	assert.Contains(t, update, `"B"`)
	assert.Contains(t, update, "WHERE {}")
}

func TestRun_UnchangedRowMakesNoNetworkCall(t *testing.T) {
	repo := newFakeRepo()
	uri := "http://repo.example.org/item1"
	repo.graphs[uri] = titleGraph(uri, "A")

	csv := "URI,INDEX,Title\n" + uri + ",,A\n"
	im := New(repo, nil, nil)

	result, err := im.Run(context.Background(), strings.NewReader(csv), Options{Model: "ImporterTestModel"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Unchanged)
	assert.Equal(t, 0, result.Updated)
	assert.Empty(t, repo.patches, "unchanged row must not submit a patch")
}

func TestRun_Limit(t *testing.T) {
	repo := newFakeRepo()
	var rows []string
	for i := 1; i <= 5; i++ {
		uri := fmt.Sprintf("http://repo.example.org/item%d", i)
		repo.graphs[uri] = titleGraph(uri, "Old")
		rows = append(rows, uri+",,New")
	}

	csv := "URI,INDEX,Title\n" + strings.Join(rows, "\n") + "\n"
	im := New(repo, nil, nil)

	result, err := im.Run(context.Background(), strings.NewReader(csv), Options{
		Model: "ImporterTestModel",
		Limit: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total, "limit must truncate processing")
	assert.Len(t, repo.fetched, 2, "rows past the limit must not be fetched")
}

func TestRun_FailedRowContinues(t *testing.T) {
	repo := newFakeRepo()
	good := "http://repo.example.org/good"
	bad := "http://repo.example.org/missing"
	repo.graphs[good] = titleGraph(good, "Old")

	csv := "URI,INDEX,Title\n" + bad + ",,New\n" + good + ",,New\n"
	im := New(repo, nil, nil)

	result, err := im.Run(context.Background(), strings.NewReader(csv), Options{Model: "ImporterTestModel"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Updated)
	assert.Contains(t, repo.patches, good, "later rows still process after a failure")
}

func TestRun_ResumeSkipsCompleted(t *testing.T) {
	repo := newFakeRepo()
	done := "http://repo.example.org/done"
	fresh := "http://repo.example.org/fresh"
	repo.graphs[fresh] = titleGraph(fresh, "Old")

	cl := newFakeLog()
	require.NoError(t, cl.Record(itemlog.Entry{URI: done, Status: itemlog.StatusUpdated}))

	csv := "URI,INDEX,Title\n" + done + ",,Anything\n" + fresh + ",,New\n"
	im := New(repo, cl, nil)

	result, err := im.Run(context.Background(), strings.NewReader(csv), Options{
		Model:  "ImporterTestModel",
		Resume: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Total)
	assert.NotContains(t, repo.fetched, done, "skipped rows must not be fetched")
}

func TestRun_RecordsCompletionEntries(t *testing.T) {
	repo := newFakeRepo()
	uri := "http://repo.example.org/item1"
	repo.graphs[uri] = titleGraph(uri, "A")

	cl := newFakeLog()
	csv := "URI,INDEX,Title\n" + uri + ",,A|B\n"
	im := New(repo, cl, nil)

	_, err := im.Run(context.Background(), strings.NewReader(csv), Options{Model: "ImporterTestModel"})
	require.NoError(t, err)

	entry, ok := cl.entries[uri]
	require.True(t, ok)
	assert.Equal(t, itemlog.StatusUpdated, entry.Status)
}

func TestRun_UnknownModel(t *testing.T) {
	im := New(newFakeRepo(), nil, nil)

	_, err := im.Run(context.Background(), strings.NewReader("URI,INDEX\n"), Options{Model: "NoSuchModel"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownModel)
}

func TestRun_MissingRequiredColumn(t *testing.T) {
	im := New(newFakeRepo(), nil, nil)

	tests := []struct {
		name   string
		header string
	}{
		{"missing URI", "INDEX,Title"},
		{"missing INDEX", "URI,Title"},
		{"missing mapped column", "URI,INDEX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := im.Run(context.Background(), strings.NewReader(tt.header+"\n"),
				Options{Model: "ImporterTestModel"})
			assert.Error(t, err)
		})
	}
}
