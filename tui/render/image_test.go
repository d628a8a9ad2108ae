package render

import "testing"

func TestResolveImageURL(t *testing.T) {
	tests := []struct {
		name    string
		context string
		image   string
		want    string
		ok      bool
	}{
		{name: "absolute joins with slash", context: "https://cdn.example/", image: "a.png", want: "https://cdn.example//a.png", ok: true},
		{name: "absolute without slash", context: "http://localhost:3000/images", image: "a.png", want: "http://localhost:3000/images/a.png", ok: true},
		{name: "relative concatenates", context: "/img/", image: "a.png", want: "/img/a.png", ok: true},
		{name: "relative without slash", context: "img", image: "a.png", want: "imga.png", ok: true},
		{name: "no image", context: "/img/", image: "", ok: false},
		{name: "blank image", context: "/img/", image: "  ", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ResolveImageURL(tc.context, tc.image)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("got (%q, %v) want (%q, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestPermalink(t *testing.T) {
	if got := Permalink("test", 123); got != "/test/res/123" {
		t.Fatalf("unexpected permalink: %q", got)
	}
	if got := Permalink("/b/", 7); got != "/b/res/7" {
		t.Fatalf("board slashes must be trimmed: %q", got)
	}
}
