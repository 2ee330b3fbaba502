package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseRender,
				Kind:   KindInvalidShape,
				Path:   []string{"shape", "circle"},
				Type:   "variant",
				Detail: "matches no semantic shape",
			},
			contains: []string{"[render]", "invalid_shape", "shape.circle", "variant", "matches no semantic shape"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseConvert,
				Kind:  KindUnsupported,
			},
			contains: []string{"[convert]", "unsupported"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "decode wit json",
				Cause:  errors.New("unexpected EOF"),
			},
			contains: []string{"[load]", "invalid_data", "decode wit json", "caused by", "unexpected EOF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("message %q missing %q", msg, s)
				}
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseRender, KindUnresolvedType).
		Path("point", "x").
		Type("u32").
		Detail("type id %d out of range", 42).
		Cause(cause).
		Build()

	if err.Phase != PhaseRender || err.Kind != KindUnresolvedType {
		t.Error("phase/kind not set")
	}
	if len(err.Path) != 2 || err.Path[0] != "point" {
		t.Errorf("path = %v", err.Path)
	}
	if err.Detail != "type id 42 out of range" {
		t.Errorf("detail = %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}

func TestIs(t *testing.T) {
	a := UnresolvedType(PhaseRender, nil, 1)
	b := UnresolvedType(PhaseRender, []string{"elsewhere"}, 2)
	if !errors.Is(a, b) {
		t.Error("same phase/kind should match")
	}
	c := UnknownResource(PhaseRender, nil, 1)
	if errors.Is(a, c) {
		t.Error("different kinds should not match")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if e := NotUpToDate("out.abi.md"); e.Kind != KindNotUpToDate ||
		!strings.Contains(e.Error(), "out.abi.md") {
		t.Errorf("NotUpToDate: %v", e)
	}
	if e := NotFound(PhaseLoad, "interface", "clocks"); !strings.Contains(e.Error(), `"clocks"`) {
		t.Errorf("NotFound: %v", e)
	}
	if e := Load("open file", errors.New("denied")); e.Unwrap() == nil {
		t.Errorf("Load should chain its cause: %v", e)
	}
	if e := InvalidShape(PhaseRender, []string{"t"}, "odd"); e.Kind != KindInvalidShape {
		t.Errorf("InvalidShape: %v", e)
	}
}
