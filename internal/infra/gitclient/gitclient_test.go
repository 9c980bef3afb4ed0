package gitclient

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/H4-Corp/AndroidLine/internal/infra/execx"
)

type fakeRunner struct {
	dir  string
	name string
	args []string
	res  execx.Result
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) execx.Result {
	f.dir = dir
	f.name = name
	f.args = args
	return f.res
}

func TestCloneArgumentVector(t *testing.T) {
	runner := &fakeRunner{}
	client := New(runner)

	if err := client.Clone(context.Background(), "https://example.com/tpl.git", "MyApp"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.name != "git" {
		t.Fatalf("expected git, got %s", runner.name)
	}
	if want := []string{"clone", "https://example.com/tpl.git", "MyApp"}; !reflect.DeepEqual(runner.args, want) {
		t.Fatalf("unexpected args: %v", runner.args)
	}
	if runner.dir != "" {
		t.Fatalf("clone must not change working directory, got %q", runner.dir)
	}
}

func TestCloneSurfacesStderr(t *testing.T) {
	runner := &fakeRunner{res: execx.Result{
		Stderr:   []byte("fatal: repository not found\n"),
		ExitCode: 128,
		Err:      errors.New("exit status 128"),
	}}
	client := New(runner)

	err := client.Clone(context.Background(), "https://example.com/missing.git", "MyApp")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "repository not found") {
		t.Fatalf("expected captured stderr in error, got %v", err)
	}
}

func TestCloneNilRunner(t *testing.T) {
	if err := (Client{}).Clone(context.Background(), "url", "dest"); err == nil {
		t.Fatal("expected error for nil runner")
	}
}
