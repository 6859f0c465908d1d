package templates

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Translated copy for non-base locales. The base locale uses the fallback
// strings in Copy directly.
func init() {
	ptBR := language.MustParse("pt-BR")
	for key, value := range map[string]string{
		"nav.about":                   "Sobre",
		"nav.projects":                "Projetos",
		"nav.contact":                 "Contato",
		"theme.toggle":                "Alternar tema",
		"projects.search_placeholder": "Buscar projetos",
		"projects.search_label":       "Buscar projetos por título, tag ou descrição",
		"projects.filter_all":         "Todos",
		"projects.empty":              "Nenhum projeto corresponde ao filtro atual.",
		"project.back":                "Voltar aos projetos",
		"project.repo":                "Código-fonte",
		"project.demo":                "Demonstração",
		"contact.heading":             "Entre em contato",
		"error.not_found.title":       "Página não encontrada",
		"error.not_found.body":        "Não há nada neste endereço.",
	} {
		_ = message.SetString(ptBR, key, value)
	}
}
