package css

import "testing"

func TestTokenizerIdent(t *testing.T) {
	tokenizer := NewTokenizer("color")
	token := tokenizer.Next()

	if token.Type != IdentToken {
		t.Errorf("Expected IdentToken, got %v", token.Type)
	}
	if token.Value != "color" {
		t.Errorf("Expected 'color', got %v", token.Value)
	}
}

func TestTokenizerString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"double quotes", `"hello"`, "hello"},
		{"single quotes", `'world'`, "world"},
		{"with spaces", `"hello world"`, "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenizer := NewTokenizer(tt.input)
			token := tokenizer.Next()

			if token.Type != StringToken {
				t.Errorf("Expected StringToken, got %v", token.Type)
			}
			if token.Value != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, token.Value)
			}
		})
	}
}

func TestTokenizerUnterminatedStringIsBad(t *testing.T) {
	tokenizer := NewTokenizer("\"hello\nworld\"")
	token := tokenizer.Next()

	if token.Type != BadStringToken {
		t.Errorf("Expected BadStringToken, got %v", token.Type)
	}
}

func TestTokenizerNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"integer", "42", 42},
		{"decimal", "3.14", 3.14},
		{"negative", "-7", -7},
		{"exponent", "1e2", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenizer := NewTokenizer(tt.input)
			token := tokenizer.Next()

			if token.Type != NumberToken {
				t.Errorf("Expected NumberToken, got %v", token.Type)
			}
			if token.Num != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, token.Num)
			}
		})
	}
}

func TestTokenizerDimension(t *testing.T) {
	tokenizer := NewTokenizer("10px")
	token := tokenizer.Next()

	if token.Type != DimensionToken {
		t.Errorf("Expected DimensionToken, got %v", token.Type)
	}
	if token.Num != 10 || token.Unit != "px" {
		t.Errorf("Expected 10px, got %v%v", token.Num, token.Unit)
	}
}

func TestTokenizerPercentage(t *testing.T) {
	tokenizer := NewTokenizer("50%")
	token := tokenizer.Next()

	if token.Type != PercentageToken {
		t.Errorf("Expected PercentageToken, got %v", token.Type)
	}
	if token.Num != 50 {
		t.Errorf("Expected 50, got %v", token.Num)
	}
}

func TestTokenizerHash(t *testing.T) {
	tokenizer := NewTokenizer("#header")
	token := tokenizer.Next()

	if token.Type != HashToken {
		t.Errorf("Expected HashToken, got %v", token.Type)
	}
	if token.Value != "header" {
		t.Errorf("Expected 'header', got %v", token.Value)
	}
	if token.Hash != HashID {
		t.Errorf("Expected HashID flag for ident-like hash")
	}
}

func TestTokenizerFunction(t *testing.T) {
	tokenizer := NewTokenizer("rgb(")
	token := tokenizer.Next()

	if token.Type != FunctionToken {
		t.Errorf("Expected FunctionToken, got %v", token.Type)
	}
	if token.Value != "rgb" {
		t.Errorf("Expected 'rgb', got %v", token.Value)
	}
}

func TestTokenizerAtKeyword(t *testing.T) {
	tokenizer := NewTokenizer("@media")
	token := tokenizer.Next()

	if token.Type != AtKeywordToken {
		t.Errorf("Expected AtKeywordToken, got %v", token.Type)
	}
	if token.Value != "media" {
		t.Errorf("Expected 'media', got %v", token.Value)
	}
}

func TestTokenizerEscape(t *testing.T) {
	tokenizer := NewTokenizer(`\41 bc`)
	token := tokenizer.Next()

	if token.Type != IdentToken {
		t.Errorf("Expected IdentToken, got %v", token.Type)
	}
	if token.Value != "Abc" {
		t.Errorf("Expected 'Abc', got %v", token.Value)
	}
}

func TestTokenizerPunctuation(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{":", ColonToken},
		{";", SemicolonToken},
		{",", CommaToken},
		{"{", LeftBraceToken},
		{"}", RightBraceToken},
		{"(", LeftParenToken},
		{")", RightParenToken},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokenizer := NewTokenizer(tt.input)
			token := tokenizer.Next()

			if token.Type != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, token.Type)
			}
		})
	}
}

func TestTokenizerComment(t *testing.T) {
	tokenizer := NewTokenizer("/* comment */ color")
	token := tokenizer.Next()

	// Comment should be invisible, leaving the following whitespace.
	if token.Type != WhitespaceToken {
		t.Errorf("Expected WhitespaceToken after comment, got %v", token.Type)
	}
	token = tokenizer.Next()
	if token.Type != IdentToken || token.Value != "color" {
		t.Errorf("Expected IdentToken 'color', got %v %v", token.Type, token.Value)
	}
}

func TestTokenizerCSSRule(t *testing.T) {
	input := "div { color: red; }"
	tokenizer := NewTokenizer(input)

	expectedTokens := []struct {
		tokenType TokenType
		value     string
	}{
		{IdentToken, "div"},
		{WhitespaceToken, " "},
		{LeftBraceToken, "{"},
		{WhitespaceToken, " "},
		{IdentToken, "color"},
		{ColonToken, ":"},
		{WhitespaceToken, " "},
		{IdentToken, "red"},
		{SemicolonToken, ";"},
		{WhitespaceToken, " "},
		{RightBraceToken, "}"},
	}

	for i, expected := range expectedTokens {
		token := tokenizer.Next()
		if token.Type != expected.tokenType {
			t.Errorf("Token %d: expected type %v, got %v", i, expected.tokenType, token.Type)
		}
		if token.Value != expected.value {
			t.Errorf("Token %d: expected value %v, got %v", i, expected.value, token.Value)
		}
	}
}

func TestTokenizerBadURLRecovers(t *testing.T) {
	tokenizer := NewTokenizer(`url(bad "url) ident`)
	token := tokenizer.Next()
	if token.Type != BadUrlToken {
		t.Errorf("Expected BadUrlToken, got %v", token.Type)
	}
	tokenizer.SkipWhitespace()
	token = tokenizer.Next()
	if token.Type != IdentToken || token.Value != "ident" {
		t.Errorf("Expected tokenizer to recover to 'ident', got %v %v", token.Type, token.Value)
	}
}

func TestTokenizerNulBecomesReplacementChar(t *testing.T) {
	tokenizer := NewTokenizer("a\x00b")
	token := tokenizer.Next()
	if token.Type != IdentToken || token.Value != "a�b" {
		t.Errorf("Expected ident 'a�b', got %v %q", token.Type, token.Value)
	}
}
