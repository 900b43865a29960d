package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	coredeed "github.com/example/escriba/internal/core/deed"
)

// DefaultTemplates returns the built-in checklist templates.
// These mirror the registry's standing document policy per deed type.
func DefaultTemplates() coredeed.Templates {
	return coredeed.Templates{
		"Doação": {
			"RG/CPF das partes",
			"Certidão do imóvel",
			"Certidão de casamento",
			"Comprovante de endereço",
		},
		"Compra e Venda": {
			"RG/CPF comprador/vendedor",
			"Matrícula atualizada",
			"Contrato de compra e venda",
			"Comprovante de pagamento",
		},
	}
}

// templatesFile is the YAML shape of a templates file: a map of deed type
// to its ordered document list.
type templatesFile struct {
	Templates map[string][]string `yaml:"templates"`
}

// LoadTemplates reads checklist templates from a YAML file.
// An empty path returns the built-in defaults.
func LoadTemplates(path string) (coredeed.Templates, error) {
	if path == "" {
		return DefaultTemplates(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}

	var file templatesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse templates file: %w", err)
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("templates file %s defines no templates", path)
	}

	return coredeed.Templates(file.Templates), nil
}
