package php

import (
	"reflect"
	"testing"
)

func TestComposerJSON_Supports(t *testing.T) {
	parser := &ComposerJSON{}
	if !parser.Supports("composer.json") {
		t.Error("Supports(composer.json) = false")
	}
	for _, name := range []string{"composer.lock", "Composer.json", "package.json"} {
		if parser.Supports(name) {
			t.Errorf("Supports(%q) = true", name)
		}
	}
}

func TestComposerJSON_Parse(t *testing.T) {
	got, err := (&ComposerJSON{}).Parse([]byte(`{"require": {"php": "^8.0"}}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := map[string]string{"php": "^8.0"}
	if !reflect.DeepEqual(got.Map(), want) {
		t.Errorf("Parse() = %v, want %v", got.Map(), want)
	}
}

func TestComposerJSON_IgnoresRequireDev(t *testing.T) {
	content := `{
    "name": "acme/app",
    "require": {
        "php": ">=8.1",
        "ext-json": "*",
        "laravel/framework": "^10.0",
        "guzzlehttp/guzzle": "^7.2"
    },
    "require-dev": {
        "phpunit/phpunit": "^10.0"
    }
}`

	got, err := (&ComposerJSON{}).Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	wantNames := []string{"php", "ext-json", "laravel/framework", "guzzlehttp/guzzle"}
	if names := got.Names(); !reflect.DeepEqual(names, wantNames) {
		t.Errorf("Names() = %v, want %v", names, wantNames)
	}
	if _, ok := got.Get("phpunit/phpunit"); ok {
		t.Error("require-dev should not be read")
	}
}

func TestComposerJSON_EmptyRequireArray(t *testing.T) {
	got, err := (&ComposerJSON{}).Parse([]byte(`{"name": "acme/empty", "require": []}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("Len() = %d, want 0", got.Len())
	}
}

func TestComposerJSON_Malformed(t *testing.T) {
	for _, content := range []string{`{"require": `, `{"require": "php"}`, `[]`} {
		if _, err := (&ComposerJSON{}).Parse([]byte(content)); err == nil {
			t.Errorf("Parse(%q) expected error", content)
		}
	}
}
