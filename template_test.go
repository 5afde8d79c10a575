package sprig

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

const sampleJSON = `{
	"bg":     {"x": 0, "y": 0, "width": 1900, "height": 1080, "color": "black"},
	"text":   {"x": 100, "y": 100, "text": "Hello World", "fontSize": 50},
	"gone":   null,
	"row":    {"props": {"x": 60, "y": 200}, "dot": {"width": 20}, "label": {"text": "hi"}},
	"lost":   {"inner": {"x": 1}, "y": 2},
	"square": {"x": 100, "y": 300}
}`

func TestTemplateUnmarshalKeepsOrder(t *testing.T) {
	var tmpl Template
	if err := json.Unmarshal([]byte(sampleJSON), &tmpl); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	var keys []string
	for _, e := range tmpl {
		keys = append(keys, e.Key)
	}
	want := []string{"bg", "text", "gone", "row", "lost", "square"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("keys = %v, want %v", keys, want)
	}
}

func TestTemplateUnmarshalShapes(t *testing.T) {
	var tmpl Template
	if err := json.Unmarshal([]byte(sampleJSON), &tmpl); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	bg := tmpl[0]
	if bg.IsContainer() || bg.IsNull() {
		t.Error("bg should be a leaf")
	}
	if w, _ := bg.Props.Float("width"); w != 1900 {
		t.Errorf("bg width = %v, want 1900", w)
	}

	if !tmpl[2].IsNull() {
		t.Error("gone should be null")
	}

	row := tmpl[3]
	if !row.IsContainer() {
		t.Fatal("row should be a container")
	}
	if x, _ := row.Props.Float("x"); x != 60 {
		t.Errorf("row x = %v, want 60", x)
	}
	if row.Props.Has("props") || row.Props.Has("dot") {
		t.Error("row props should hold only its own properties")
	}
	if len(row.Children) != 2 || row.Children[0].Key != "dot" || row.Children[1].Key != "label" {
		t.Errorf("row children = %+v, want [dot label]", row.Children)
	}

	lost := tmpl[4]
	if !lost.missingProps() {
		t.Error("lost should be a container missing its props")
	}
	if len(lost.Children) != 1 || lost.Children[0].Key != "inner" {
		t.Errorf("lost children = %+v, want [inner]", lost.Children)
	}
}

func TestTemplateUnmarshalFalsyValues(t *testing.T) {
	var tmpl Template
	if err := json.Unmarshal([]byte(`{"a": false, "b": 0, "c": "", "d": {}}`), &tmpl); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, e := range tmpl[:3] {
		if !e.IsNull() {
			t.Errorf("%s should be null", e.Key)
		}
	}
	if tmpl[3].IsNull() {
		t.Error("an empty object should still produce a node")
	}
}

func TestTemplateUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `nope`},
		{"array root", `[1, 2]`},
		{"scalar entry", `{"a": 5}`},
		{"nested scalar child", `{"a": {"props": {}, "b": true}}`},
		{"bad props", `{"a": {"props": 3}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tmpl Template
			if err := json.Unmarshal([]byte(tt.data), &tmpl); err == nil {
				t.Errorf("Unmarshal(%s) should fail", tt.data)
			}
		})
	}
}

func TestTemplateMarshalRoundTrip(t *testing.T) {
	in := Template{
		Leaf("z", Props{"x": 1.0}),
		Null("n"),
		Container("row", Props{"y": 2.0},
			Leaf("a", Props{"text": "hi"}),
			Container("inner", Props{}),
		),
		Leaf("b", Props{}),
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.HasPrefix(string(data), `{"z":`) {
		t.Errorf("encoding should keep order, got %s", data)
	}
	var out Template
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal(%s): %v", data, err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestTemplateKeys(t *testing.T) {
	var tmpl Template
	if err := json.Unmarshal([]byte(sampleJSON), &tmpl); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := []string{"bg", "text", "row", "dot", "label", "square"}
	if got := tmpl.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
}

func TestLoadTemplateRendersScenario(t *testing.T) {
	tmpl, err := LoadTemplate(strings.NewReader(`{
		"a": {"x": 0, "y": 0, "width": 10, "height": 10},
		"b": {"props": {"x": 5, "y": 5}, "c": {"x": 1, "y": 1, "width": 2, "height": 2}}
	}`))
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}
	ctx, _, _ := newTestContext(t)
	s := NewScene(ctx, tmpl, nil)
	mustRender(t, s)

	if got := keysOf(s.Children()); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Children = %v, want [a b]", got)
	}
	if s.Find("b").Find("c") == nil {
		t.Error("c should be under b")
	}
	if s.Find("z") != nil {
		t.Error("Find(z) should be nil")
	}
}

func TestLoadTemplateNull(t *testing.T) {
	tmpl, err := LoadTemplate(strings.NewReader(`null`))
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}
	if len(tmpl) != 0 {
		t.Errorf("len = %d, want 0", len(tmpl))
	}
}

func TestTemplateMissingProps(t *testing.T) {
	var tmpl Template
	if err := json.Unmarshal([]byte(sampleJSON), &tmpl); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got := tmpl.MissingProps(); !reflect.DeepEqual(got, []string{"lost"}) {
		t.Errorf("MissingProps = %v, want [lost]", got)
	}
	nested := Template{Container("a", Props{}, Container("b", nil, Container("c", nil)))}
	if got := nested.MissingProps(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("MissingProps = %v, want [b] (children of skipped containers are not reported)", got)
	}
}
