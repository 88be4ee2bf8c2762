package normalization

import (
	"testing"
)

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"разделители", "some_name-here", "some name here"},
		{"акроним RHEL", "RHEL 8.6", "Red Hat Enterprise Linux 8.6"},
		{"маркер версии перед цифрой", "Photoshop v2019", "Photoshop 2019"},
		{"маркер версии со словом", "App version 12", "App 12"},
		{"маркер без цифры не трогаем", "Server", "Server"},
		{"архитектура", "App 1.2 x64", "App 1.2"},
		{"сокращения", "win svr 2016", "windows server 2016"},
		{"сокращение db", "oracle db 19c", "oracle database 19c"},
		{"схлопывание пробелов", "  a   b  ", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preprocess(tt.input)
			if got != tt.expected {
				t.Errorf("Preprocess(%q) = %q, ожидалось %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExtractVendor(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		vendor     string
		alias      string
		isOS       bool
		isDatabase bool
	}{
		{"ms сокращение", "ms office 2019", "Microsoft", "ms", false, false},
		{"windows как псевдоним", "windows server 2016", "Microsoft", "windows", true, false},
		{"oracle это база", "oracle database 19c", "Oracle", "oracle", false, true},
		{"red hat через пробел", "red hat enterprise linux 8.6", "Red Hat", "red hat", true, false},
		{"vm ware раздельно", "vm ware vsphere 7.0", "VMware", "vm ware", false, false},
		{"python", "python 3.11", "Python Software Foundation", "python", false, false},
		{"нет вендора", "unknown software 123", "", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendor, alias, ctx := ExtractVendor(tt.input)
			if vendor != tt.vendor || alias != tt.alias {
				t.Errorf("ExtractVendor(%q) = (%q, %q), ожидалось (%q, %q)",
					tt.input, vendor, alias, tt.vendor, tt.alias)
			}
			if ctx.IsOS != tt.isOS || ctx.IsDatabase != tt.isDatabase {
				t.Errorf("ExtractVendor(%q) контекст = (os=%v, db=%v), ожидалось (os=%v, db=%v)",
					tt.input, ctx.IsOS, ctx.IsDatabase, tt.isOS, tt.isDatabase)
			}
		})
	}
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		ctx      VendorContext
		expected string
	}{
		{"трехчастная версия", "python 3.11.4", VendorContext{}, "3.11.4"},
		{"двухчастная версия", "linux 8.6", VendorContext{}, "8.6"},
		{"год", "office 2019", VendorContext{}, "2019"},
		{"цифры с буквой", "database 19c", VendorContext{}, "19c"},
		{"DC", "acrobat DC professional", VendorContext{}, "DC"},
		{"простое число", "app 365", VendorContext{}, "365"},
		{"приоритет трехчастной над годом", "app 1.2.3 2019", VendorContext{}, "1.2.3"},
		{"нет версии", "some app", VendorContext{}, ""},
		{
			"правило Oracle",
			"oracle database 19.3.0.0 enterprise",
			VendorContext{MatchedAlias: "oracle", IsDatabase: true},
			"19c",
		},
		{
			"Oracle без многочастной версии идет по каскаду",
			"oracle database 19c",
			VendorContext{MatchedAlias: "oracle", IsDatabase: true},
			"19c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractVersion(tt.input, tt.ctx)
			if got != tt.expected {
				t.Errorf("ExtractVersion(%q) = %q, ожидалось %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExtractEdition(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"office professional plus 2019", "Professional Plus"},
		{"acrobat professional", "Professional"},
		{"database enterprise edition", "Enterprise"},
		{"windows 10 enterprise", "Enterprise"},
		{"sql server standard edition", "Standard"},
		{"windows server datacenter", "Datacenter"},
		{"plain app", ""},
	}

	for _, tt := range tests {
		got := ExtractEdition(tt.input)
		if got != tt.expected {
			t.Errorf("ExtractEdition(%q) = %q, ожидалось %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeScenarios(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name       string
		input      string
		vendor     string
		product    string
		version    string
		edition    string
		confidence float64
	}{
		{
			"офис с полным набором полей",
			"MS Office Professional Plus 2019",
			"Microsoft", "Office", "2019", "Professional Plus", 1.0,
		},
		{
			"составной продукт windows server",
			"win svr 2016 standard",
			"Microsoft", "Windows Server", "2016", "Standard", 1.0,
		},
		{
			"oracle с буквенным релизом",
			"Oracle Database 19c Enterprise Edition",
			"Oracle", "Database", "19c", "Enterprise", 1.0,
		},
		{
			"раскрытие RHEL",
			"RHEL 8.6",
			"Red Hat", "Linux", "8.6", "Enterprise", 1.0,
		},
		{
			"adobe с DC в имени продукта",
			"Adobe Acrobat DC Professional",
			"Adobe", "Acrobat Dc", "DC", "Professional", 1.0,
		},
		{
			"без вендора и редакции",
			"Unknown Software 123",
			"", "Unknown Software", "123", "", 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := n.Normalize(tt.input)

			if got := strOrEmpty(identity.Vendor); got != tt.vendor {
				t.Errorf("vendor = %q, ожидалось %q", got, tt.vendor)
			}
			if got := strOrEmpty(identity.Product); got != tt.product {
				t.Errorf("product = %q, ожидалось %q", got, tt.product)
			}
			if got := strOrEmpty(identity.Version); got != tt.version {
				t.Errorf("version = %q, ожидалось %q", got, tt.version)
			}
			if got := strOrEmpty(identity.Edition); got != tt.edition {
				t.Errorf("edition = %q, ожидалось %q", got, tt.edition)
			}
			if identity.ConfidenceScore != tt.confidence {
				t.Errorf("confidence = %v, ожидалось %v", identity.ConfidenceScore, tt.confidence)
			}
			if identity.RawInput != tt.input {
				t.Errorf("raw_input = %q, ожидалось %q", identity.RawInput, tt.input)
			}
		})
	}
}

func TestNormalizeNeverFails(t *testing.T) {
	n := NewNormalizer()

	inputs := []string{"", "   ", "!!!", "___---___", "\t\n"}
	for _, input := range inputs {
		identity := n.Normalize(input)
		if identity.RawInput != input {
			t.Errorf("raw_input не сохранен для %q", input)
		}
		if identity.ConfidenceScore < 0 || identity.ConfidenceScore > 1 {
			t.Errorf("confidence вне [0,1] для %q: %v", input, identity.ConfidenceScore)
		}
	}
}

func TestConfidenceScoreAdditive(t *testing.T) {
	v := "x"

	tests := []struct {
		name                              string
		vendor, product, version, edition *string
		expected                          float64
	}{
		{"все поля", &v, &v, &v, &v, 1.0},
		{"без редакции", &v, &v, &v, nil, 0.9},
		{"без продукта", &v, nil, &v, &v, 0.7},
		{"только вендор", &v, nil, nil, nil, 0.4},
		{"продукт и версия", nil, &v, &v, nil, 0.5},
		{"ничего", nil, nil, nil, nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConfidenceScore(tt.vendor, tt.product, tt.version, tt.edition)
			if got != tt.expected {
				t.Errorf("ConfidenceScore = %v, ожидалось %v", got, tt.expected)
			}
		})
	}
}
