package raw

import "testing"

func TestString(t *testing.T) {
	t.Setenv("ENV", " prod ")
	t.Setenv("LOG_SERVICE", "contentgate")
	t.Setenv("LOG_BLANK", "   ")

	cases := []struct {
		env  Env
		key  string
		want string
	}{
		{"", "ENV", "prod"},
		{"LOG_", "SERVICE", "contentgate"},
		{"LOG_", "BLANK", "def"},
		{"LOG_", "MISSING", "def"},
		{"", "SERVICE", "def"},
	}
	for _, c := range cases {
		if got := c.env.String(c.key, "def"); got != c.want {
			t.Fatalf("%s%s = %q, want %q", c.env, c.key, got, c.want)
		}
	}
}

func TestBool(t *testing.T) {
	cases := map[string]bool{
		"1": true, "true": true, "YES": true, " t ": true,
		"0": false, "false": false, "no": false, "F": false,
	}
	for in, want := range cases {
		t.Setenv("LOG_CALLER", in)
		if got := Env("LOG_").Bool("CALLER", !want); got != want {
			t.Fatalf("Bool(%q) = %v, want %v", in, got, want)
		}
	}

	t.Setenv("LOG_CALLER", "maybe")
	if !Env("LOG_").Bool("CALLER", true) {
		t.Fatalf("invalid value should give the default")
	}
	t.Setenv("LOG_CALLER", "")
	if Env("LOG_").Bool("CALLER", false) {
		t.Fatalf("empty value should give the default")
	}
}

func TestInt(t *testing.T) {
	t.Setenv("LOG_SAMPLE_EVERY", " 10 ")
	if got := Env("LOG_").Int("SAMPLE_EVERY", 0); got != 10 {
		t.Fatalf("Int = %d", got)
	}
	t.Setenv("LOG_SAMPLE_EVERY", "-3")
	if got := Env("LOG_").Int("SAMPLE_EVERY", 0); got != -3 {
		t.Fatalf("negative Int = %d", got)
	}
	for _, bad := range []string{"", "ten", "1.5"} {
		t.Setenv("LOG_SAMPLE_EVERY", bad)
		if got := Env("LOG_").Int("SAMPLE_EVERY", 7); got != 7 {
			t.Fatalf("Int(%q) = %d, want default", bad, got)
		}
	}
}
