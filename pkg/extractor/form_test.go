package extractor

import (
	"reflect"
	"testing"
)

func TestFormParams(t *testing.T) {
	tests := []struct {
		name            string
		html            string
		expectedVisible []string
		expectedHidden  []string
	}{
		{
			"Visible and hidden",
			`<form><input type="text" name="username"><input type="hidden" name="csrf_token"></form>`,
			[]string{"username"},
			[]string{"csrf_token"},
		},
		{
			"Missing type defaults to visible",
			`<form><input name="q"></form>`,
			[]string{"q"},
			nil,
		},
		{
			"Case-insensitive hidden",
			`<FORM><INPUT TYPE="HIDDEN" NAME="state"></FORM>`,
			nil,
			[]string{"state"},
		},
		{
			"Attribute order reversed",
			`<form><input name="token" type='hidden'></form>`,
			nil,
			[]string{"token"},
		},
		{
			"Select and textarea are visible",
			`<form><select name="country"></select><textarea name="bio"></textarea></form>`,
			[]string{"country", "bio"},
			nil,
		},
		{
			"Nameless elements skipped",
			`<form><input type="submit" value="Go"><input name="kept"></form>`,
			[]string{"kept"},
			nil,
		},
		{
			"Unquoted name attribute",
			`<form><input name=email type=text></form>`,
			[]string{"email"},
			nil,
		},
		{
			"Multiple forms",
			`<form><input name="a"></form><p>between</p><form><input type="hidden" name="b"></form>`,
			[]string{"a"},
			[]string{"b"},
		},
		{
			"Unclosed form still extracted",
			`<form><input name="open1"> page keeps going`,
			[]string{"open1"},
			nil,
		},
		{
			"Inputs outside forms ignored",
			`<input name="stray"><form><input name="inside"></form>`,
			[]string{"inside"},
			nil,
		},
		{
			"No forms",
			`<p>nothing here</p>`,
			nil,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible, hidden := FormParams(tt.html)
			if !reflect.DeepEqual(visible, tt.expectedVisible) {
				t.Errorf("visible = %v, want %v", visible, tt.expectedVisible)
			}
			if !reflect.DeepEqual(hidden, tt.expectedHidden) {
				t.Errorf("hidden = %v, want %v", hidden, tt.expectedHidden)
			}
		})
	}
}
