package setting_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/evan-idocoding/zsetting/enums"
	"github.com/evan-idocoding/zsetting/setting"
)

type document struct {
	MySQL enums.MySQLDataTypesSupportField `json:"mysql" toml:"mysql" yaml:"mysql"`
	Join  enums.JoinAlgorithmField         `json:"join" toml:"join" yaml:"join"`
}

func TestJSONDecode(t *testing.T) {
	var d document
	in := `{"mysql":"datetime64, decimal","join":["hash","auto"]}`
	if err := json.Unmarshal([]byte(in), &d); err != nil {
		t.Fatal(err)
	}
	if !d.MySQL.Changed || d.MySQL.String() != "decimal,datetime64" {
		t.Fatalf("unexpected mysql %+v", d.MySQL)
	}
	if !d.Join.Changed || d.Join.String() != "hash,auto" {
		t.Fatalf("unexpected join %+v", d.Join)
	}
}

func TestJSONDecodeNullKeepsField(t *testing.T) {
	d := document{MySQL: setting.NewMultiEnumField(enums.Decimal)}
	if err := json.Unmarshal([]byte(`{"mysql":null}`), &d); err != nil {
		t.Fatal(err)
	}
	if d.MySQL.Changed || d.MySQL.String() != "decimal" {
		t.Fatalf("null must be a no-op, got %+v", d.MySQL)
	}
}

func TestJSONDecodeErrors(t *testing.T) {
	var d document
	err := json.Unmarshal([]byte(`{"mysql":"decimal,FOOBAR"}`), &d)
	if !errors.Is(err, setting.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if d.MySQL.Changed {
		t.Fatalf("failed decode must not change the field")
	}

	err = json.Unmarshal([]byte(`{"join":42}`), &d)
	if !errors.Is(err, setting.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestJSONEncode(t *testing.T) {
	d := document{
		MySQL: setting.NewMultiEnumField(enums.Date2String, enums.Decimal),
		Join:  setting.NewOrderedMultiEnumField(enums.JoinDirect, enums.JoinHash),
	}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `{"mysql":"decimal,date2String","join":"direct,hash"}`; got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestTOMLDecode(t *testing.T) {
	in := `
mysql = " datetime64 , decimal "
join = ["hash", "auto", "full_sorting_merge"]
`
	var d document
	if _, err := toml.Decode(in, &d); err != nil {
		t.Fatal(err)
	}
	if !d.MySQL.Changed || d.MySQL.String() != "decimal,datetime64" {
		t.Fatalf("unexpected mysql %+v", d.MySQL)
	}
	if got := d.Join.String(); got != "hash,auto,full_sorting_merge" {
		t.Fatalf("unexpected join %q", got)
	}
}

func TestTOMLDecodeBits(t *testing.T) {
	var d document
	if _, err := toml.Decode("mysql = 12\n", &d); err != nil {
		t.Fatal(err)
	}
	if got := d.MySQL.String(); got != "date2Date32,date2String" {
		t.Fatalf("unexpected %q", got)
	}
	if d.Join.Changed {
		t.Fatalf("absent key must not change the field")
	}
}

func TestTOMLDecodeInvalid(t *testing.T) {
	var d document
	if _, err := toml.Decode(`join = "hash, loop"`, &d); err == nil {
		t.Fatalf("expected error for unknown token")
	}
	if d.Join.Changed {
		t.Fatalf("failed decode must not change the field")
	}
}

func TestTOMLEncode(t *testing.T) {
	d := document{
		MySQL: setting.NewMultiEnumField(enums.DateTime64, enums.Decimal),
		Join:  setting.NewOrderedMultiEnumField(enums.JoinAuto),
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(d); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `mysql = "decimal,datetime64"`) || !strings.Contains(out, `join = "auto"`) {
		t.Fatalf("unexpected TOML:\n%s", out)
	}
}

func TestYAMLDecode(t *testing.T) {
	in := `
mysql: datetime64, decimal
join:
  - grace_hash
  - hash
`
	var d document
	if err := yaml.Unmarshal([]byte(in), &d); err != nil {
		t.Fatal(err)
	}
	if !d.MySQL.Changed || d.MySQL.String() != "decimal,datetime64" {
		t.Fatalf("unexpected mysql %+v", d.MySQL)
	}
	if !d.Join.Changed || d.Join.String() != "grace_hash,hash" {
		t.Fatalf("unexpected join %+v", d.Join)
	}
}

func TestYAMLDecodeInvalid(t *testing.T) {
	var d document
	if err := yaml.Unmarshal([]byte("mysql: [decimal, FOOBAR]\n"), &d); !errors.Is(err, setting.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if d.MySQL.Changed {
		t.Fatalf("failed decode must not change the field")
	}
	if err := yaml.Unmarshal([]byte("join: true\n"), &d); !errors.Is(err, setting.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestYAMLEncode(t *testing.T) {
	d := document{
		MySQL: setting.NewMultiEnumField(enums.Date2Date32),
		Join:  setting.NewOrderedMultiEnumField(enums.JoinHash, enums.JoinAuto),
	}
	b, err := yaml.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "mysql: date2Date32\njoin: hash,auto\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTextRoundTrip(t *testing.T) {
	src := setting.NewMultiEnumField(enums.Date2String, enums.DateTime64)
	b, err := src.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var dst enums.MySQLDataTypesSupportField
	if err := dst.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if !dst.Value.Equal(src.Value) || !dst.Changed {
		t.Fatalf("unexpected field %+v", dst)
	}
}

func TestLogValue(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	log.Info("settings",
		"mysql", setting.NewMultiEnumField(enums.DateTime64, enums.Decimal),
		"join", setting.NewOrderedMultiEnumField(enums.JoinHash),
	)
	if got, want := buf.String(), "level=INFO msg=settings mysql=decimal,datetime64 join=hash\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
