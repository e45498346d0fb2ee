package logging

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"password", true},
		{"Password", true},
		{"apiKey", true},
		{"API_KEY", true},
		{"accessToken", true},
		{"clientSecret", true},
		{"keystore", true},
		{"monkey", true}, // substring match
		{"account", false},
		{"address", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSensitiveKey(tt.key))
		})
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"colon", "token: abc123", `token: "[REDACTED]"`},
		{"equals", "password=hunter2", `password: "[REDACTED]"`},
		{"no whitespace after colon", "secret:s3cr3t", `secret: "[REDACTED]"`},
		{"case insensitive", "TOKEN = abc", `token: "[REDACTED]"`},
		{"quoted json fragment", `{"apiKey":"xyz"}`, `{"api` + `key: "[REDACTED]"` + `"}`},
		{"value stops at comma", "key=abc, user=bob", `key: "[REDACTED]", user=bob`},
		{"multiple keywords", "token=a password=b", `token: "[REDACTED]" password: "[REDACTED]"`},
		{"repeated keyword", "token=a token=b", `token: "[REDACTED]" token: "[REDACTED]"`},
		{"value stops at no-break space", "token=abc\u00a0def", "token: \"[REDACTED]\"\u00a0def"},
		{"value stops at ideographic space", "password=abc\u3000def", "password: \"[REDACTED]\"\u3000def"},
		{"value stops at byte order mark", "key=abc\ufeffdef", "key: \"[REDACTED]\"\ufeffdef"},
		{"no-break space around separator", "secret\u00a0:\u00a0abc", `secret: "[REDACTED]"`},
		{"no assignment", "rotate the token soon", "rotate the token soon"},
		{"unrelated text", "wallet unlocked", "wallet unlocked"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeString(tt.input))
		})
	}
}

func TestSanitize(t *testing.T) {
	t.Run("sensitive key redacted", func(t *testing.T) {
		got := Sanitize(Map{"password": String("abc123")})
		assert.Equal(t, Map{"password": String(Redacted)}, got)
	})

	t.Run("nested key redacted", func(t *testing.T) {
		got := Sanitize(Map{"nested": Map{"apiKey": String("xyz")}})
		assert.Equal(t, Map{"nested": Map{"apiKey": String(Redacted)}}, got)
	})

	t.Run("sensitive key redacts any value type", func(t *testing.T) {
		got := Sanitize(Map{
			"token":  Number(42),
			"secret": Map{"inner": String("x")},
			"keys":   List{String("a"), String("b")},
			"apiKey": Null{},
		})
		assert.Equal(t, Map{
			"token":  String(Redacted),
			"secret": String(Redacted),
			"keys":   String(Redacted),
			"apiKey": String(Redacted),
		}, got)
	})

	t.Run("string payload pattern redacted", func(t *testing.T) {
		got := Sanitize(String("token: abc123"))
		assert.Equal(t, String(`token: "[REDACTED]"`), got)
	})

	t.Run("strings under safe keys pattern redacted", func(t *testing.T) {
		got := Sanitize(Map{"note": String("password=abc")})
		assert.Equal(t, Map{"note": String(`password: "[REDACTED]"`)}, got)
	})

	t.Run("list elements sanitized", func(t *testing.T) {
		got := Sanitize(List{
			Map{"password": String("a"), "user": String("bob")},
			String("secret=b"),
			Number(1),
		})
		assert.Equal(t, List{
			Map{"password": String(Redacted), "user": String("bob")},
			String(`secret: "[REDACTED]"`),
			Number(1),
		}, got)
	})

	t.Run("scalars unchanged", func(t *testing.T) {
		assert.Equal(t, Number(42), Sanitize(Number(42)))
		assert.Equal(t, Bool(true), Sanitize(Bool(true)))
		assert.Equal(t, Null{}, Sanitize(Null{}))
		assert.Nil(t, Sanitize(nil))
	})

	t.Run("empty containers keep their shape", func(t *testing.T) {
		assert.Equal(t, Map{}, Sanitize(Map{}))
		assert.Equal(t, List{}, Sanitize(List{}))
		assert.Nil(t, Sanitize(Map(nil)))
	})

	t.Run("input not mutated", func(t *testing.T) {
		inner := Map{"apiKey": String("xyz")}
		list := List{String("token=abc")}
		input := Map{"nested": inner, "password": String("abc123"), "list": list}

		_ = Sanitize(input)

		assert.Equal(t, String("abc123"), input["password"])
		assert.Equal(t, String("xyz"), inner["apiKey"])
		assert.Equal(t, String("token=abc"), list[0])
	})
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []Value{
		nil,
		Null{},
		Bool(false),
		Number(3.14),
		String("token: abc123"),
		String("password=a, secret=b, key=c, token=d"),
		String(`{"apiKey":"xyz","user":"bob"}`),
		String(`already token: "[REDACTED]"`),
		Map{"password": String("abc"), "nested": Map{"apiKey": String("xyz")}},
		Map{"note": String("secret: s3cr3t"), "count": Number(2)},
		List{String("token=1"), Map{"Secret": Bool(true)}, List{String("key=2")}},
	}

	for i, in := range inputs {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			once := Sanitize(in)
			assert.Equal(t, once, Sanitize(once))
		})
	}
}

func TestSanitize_FromAny(t *testing.T) {
	type credentials struct {
		User     string `json:"user"`
		Password string `json:"password"`
	}

	got := Sanitize(FromAny(map[string]any{
		"creds": credentials{User: "bob", Password: "hunter2"},
		"ids":   []int{1, 2},
	}))

	assert.Equal(t, Map{
		"creds": Map{"user": String("bob"), "password": String(Redacted)},
		"ids":   List{Number(1), Number(2)},
	}, got)
}

func FuzzSanitizeString(f *testing.F) {
	seeds := []string{
		"",
		"token: abc123",
		"password=a, secret=b, key=c, token=d",
		`{"apiKey":"xyz","user":"bob"}`,
		`already token: "[REDACTED]"`,
		`token="[REDACTED]"x`,
		"token=[REDACTED]tail",
		"key=token=a",
		"tokentoken=a",
		"TOKEN = abc",
		"token=abc def",
		"secret　:　s3cr3t",
		"wallet unlocked",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		once := SanitizeString(s)
		assert.Equal(t, once, SanitizeString(once), "input: %q", s)

		wrapped := Map{"note": String(s), "token": String(s)}
		sanitized := Sanitize(wrapped)
		assert.Equal(t, sanitized, Sanitize(sanitized))
		assert.Equal(t, String(s), wrapped["note"], "input not mutated")
	})
}
