package glob

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/shellkit/shellkit/pkg/cwd"
	"github.com/shellkit/shellkit/pkg/pathutil"
	"github.com/shellkit/shellkit/pkg/testutil"
)

func checkGlob(t *testing.T, pattern string, want ...pathutil.Path) {
	t.Helper()
	got, err := Glob(pattern)
	if err != nil {
		t.Errorf("Glob(%q) error = %v", pattern, err)
		return
	}
	if want == nil {
		want = []pathutil.Path{}
	}
	if got == nil {
		got = []pathutil.Path{}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Glob(%q) (-want +got):\n%s", pattern, diff)
	}
}

func p(elem ...string) pathutil.Path { return pathutil.Path(filepath.Join(elem...)) }

func TestGlob_DotSuppression(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.ApplyDir(dir, testutil.Dir{".hidden": "", "visible.txt": ""})

	checkGlob(t, dir+"/*", p(dir, "visible.txt"))
	checkGlob(t, dir+"/.*", p(dir, ".hidden"))
}

func TestGlob_BraceAlternation(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.ApplyDir(dir, testutil.Dir{"a.jpg": "", "a.gif": "", "a.png": ""})

	checkGlob(t, dir+"/*.{jpg,gif}", p(dir, "a.gif"), p(dir, "a.jpg"))
	checkGlob(t, dir+"/*.png", p(dir, "a.png"))
}

func TestGlob_RecursiveWildcard(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.ApplyDir(dir, testutil.Dir{
		"f.txt": "",
		"x":     testutil.Dir{"y": testutil.Dir{}},
	})

	checkGlob(t, dir+"/**", p(dir), p(dir, "x"), p(dir, "x", "y"))
}

func TestGlob_RecursiveWildcardThenPattern(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.ApplyDir(dir, testutil.Dir{
		"a.txt": "",
		"x":     testutil.Dir{"a.txt": "", "b.log": ""},
	})

	checkGlob(t, dir+"/**/*.txt", p(dir, "a.txt"), p(dir, "x", "a.txt"))
}

func TestGlob_RecursiveWildcardSkipsHiddenDirs(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.ApplyDir(dir, testutil.Dir{
		".git": testutil.Dir{"objects": testutil.Dir{}},
		"src":  testutil.Dir{},
	})

	checkGlob(t, dir+"/**", p(dir), p(dir, "src"))
}

func TestGlob_EndToEnd(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.ApplyDir(dir, testutil.Dir{"test.txt": "", "test.clj": ""})

	checkGlob(t, dir+"/*", p(dir, "test.clj"), p(dir, "test.txt"))
	checkGlob(t, dir+"/*.{txt,clj}", p(dir, "test.clj"), p(dir, "test.txt"))
	checkGlob(t, dir+"/*.txt", p(dir, "test.txt"))
}

func TestGlob_LiteralSegmentsCheckExistence(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.ApplyDir(dir, testutil.Dir{"test.txt": ""})

	checkGlob(t, dir+"/test.txt", p(dir, "test.txt"))
	checkGlob(t, dir+"/nope.txt")
}

func TestGlob_MissingIntermediateDirIsEmpty(t *testing.T) {
	dir := testutil.TempDir(t)

	checkGlob(t, dir+"/no/such/dir/*")
}

func TestGlob_DotSegmentListsEverything(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.ApplyDir(dir, testutil.Dir{".hidden": "", "visible": ""})

	checkGlob(t, dir+"/.", p(dir, ".hidden"), p(dir, "visible"))
}

func TestGlob_DotDotSegment(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.ApplyDir(dir, testutil.Dir{"x": testutil.Dir{}})

	checkGlob(t, dir+"/x/..", p(dir))
}

func TestGlob_RelativeRoot(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.ApplyDir(dir, testutil.Dir{"test.txt": "", "sub": testutil.Dir{"test.txt": ""}})

	err := cwd.With(dir, func() error {
		checkGlob(t, "*.txt", p(dir, "test.txt"))
		checkGlob(t, "sub/*.txt", p(dir, "sub", "test.txt"))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestGlob_HomeRoot(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.ApplyDir(dir, testutil.Dir{"test.txt": ""})
	testutil.Setenv(t, "HOME", dir)

	checkGlob(t, "~/*.txt", p(dir, "test.txt"))
}

func TestGlob_UnbalancedBrace(t *testing.T) {
	dir := testutil.TempDir(t)

	_, err := Glob(dir + "/*.{jpg,gif")
	var invalid *InvalidPatternError
	if !errors.As(err, &invalid) {
		t.Errorf("Glob() error = %v, want *InvalidPatternError", err)
	}
}

func TestGlob_AlternateFilesystem(t *testing.T) {
	mem := afero.NewMemMapFs()
	testutil.Set(t, &fsys, mem)
	testutil.Must(mem.MkdirAll("/srv/logs", 0755))
	testutil.Must(afero.WriteFile(mem, "/srv/logs/app.log", nil, 0644))
	testutil.Must(afero.WriteFile(mem, "/srv/logs/app.pid", nil, 0644))

	checkGlob(t, "/srv/*/*.log", p("/srv", "logs", "app.log"))
}
