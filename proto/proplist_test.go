package proto

import (
	"reflect"
	"testing"
)

func TestFlatten(t *testing.T) {
	l := PropList{
		"application": PropBranch(PropList{
			"name": PropString("ut"),
			"process": PropBranch(PropList{
				"id": PropString("1"),
			}),
		}),
	}
	got := l.flatten()
	want := []flatProp{
		{"application.name", "ut"},
		{"application.process.id", "1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("flatten = %v, want %v", got, want)
	}
}

func TestSetGet(t *testing.T) {
	l := PropList{}
	l.Set("media.name", "test")
	l.Set("media.role", "music")
	if v, ok := l.Get("media.name"); !ok || v != "test" {
		t.Errorf("media.name = %q, %v", v, ok)
	}
	if v, ok := l.Get("media.role"); !ok || v != "music" {
		t.Errorf("media.role = %q, %v", v, ok)
	}
	if _, ok := l.Get("media"); ok {
		t.Error("branch read as leaf")
	}
	if _, ok := l.Get("media.title"); ok {
		t.Error("missing key found")
	}
}

// A leaf and a branch may share a name; inflating must keep both, and
// flattening back must restore the original wire pairs.
func TestLeafBranchCoexistence(t *testing.T) {
	l := PropList{}
	l.Set("device", "speaker")
	l.Set("device.profile", "analog")

	if v, ok := l.Get("device"); !ok || v != "speaker" {
		t.Errorf("device = %q, %v", v, ok)
	}
	if v, ok := l.Get("device.profile"); !ok || v != "analog" {
		t.Errorf("device.profile = %q, %v", v, ok)
	}

	flat := l.flatten()
	want := []flatProp{
		{"device", "speaker"},
		{"device.profile", "analog"},
	}
	if !reflect.DeepEqual(flat, want) {
		t.Fatalf("flatten = %v, want %v", flat, want)
	}

	back := PropList{}
	for _, e := range flat {
		back.inflate(e.key, e.value)
	}
	if !reflect.DeepEqual(back.flatten(), want) {
		t.Fatalf("inflate(flatten) = %v, want %v", back.flatten(), want)
	}
}

func TestCoexistenceLeafFirst(t *testing.T) {
	l := PropList{}
	l.Set("a.b", "leaf")
	l.Set("a.b.c", "nested")
	if v, ok := l.Get("a.b"); !ok || v != "leaf" {
		t.Errorf("a.b = %q, %v", v, ok)
	}
	if v, ok := l.Get("a.b.c"); !ok || v != "nested" {
		t.Errorf("a.b.c = %q, %v", v, ok)
	}
}

func TestDeflate(t *testing.T) {
	l := PropList{}
	l.Set("sink_name", "music")
	l.Set("device.description", "Pipe")
	if got, want := l.Deflate(), "device.description=Pipe sink_name=music"; got != want {
		t.Fatalf("Deflate = %q, want %q", got, want)
	}
}
