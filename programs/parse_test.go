package programs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tape")
	if err := os.WriteFile(path, []byte("<[-]\xff"), 0644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		spec string
		want string
	}{
		{"hex:3c2b00", "<+\x00"},
		{"hex:", ""},
		{"file:" + path, "<[-]\xff"},
		{"program:add_five", "<+++++\x00"},
		{`<+++++\x00`, "<+++++\x00"},
		{`<[-]\xff`, "<[-]\xff"},
		{`"\x00`, "\"\x00"},
		{`a\"b\x00`, "a\"b\x00"},
		{`a"b\\`, `a"b\`},
		{"}.AX", "}.AX"},
		{"", ""},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.spec)
		if err != nil {
			t.Fatalf("%s: %v", tc.spec, err)
		}
		if string(got) != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.spec, got, tc.want)
		}
	}

	for _, spec := range []string{
		"hex:zz",
		"file:" + filepath.Join(t.TempDir(), "nope"),
		"program:nope",
		`bad\q`,
	} {
		if _, err := Parse(spec); err == nil {
			t.Fatalf("%s: should error", spec)
		}
	}
}
