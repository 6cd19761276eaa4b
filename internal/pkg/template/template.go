package template

import (
	"regexp"
	"strings"
)

// Плейсхолдеры сообщений.
const (
	Name     = "nome"
	Bag      = "bag"
	Message  = "mensagem"
	Ticket   = "senha"
	Unit     = "unidade"
	Count    = "quantidade"
	Position = "posicao"
)

type Bindings map[string]string

var placeholder = regexp.MustCompile(`\{\{(\w+)\}\}|\{(\w+)\}`)

// Render подставляет значения в шаблон за один проход: подставленный текст
// повторно не разбирается.
// {{ключ}} ищется без учета регистра, {ключ} - как есть.
// Неизвестные плейсхолдеры остаются в тексте.
func Render(tpl string, bindings Bindings) string {
	if tpl == "" || len(bindings) == 0 {
		return tpl
	}

	return placeholder.ReplaceAllStringFunc(tpl, func(match string) string {
		groups := placeholder.FindStringSubmatch(match)
		if key := groups[1]; key != "" {
			if value, ok := bindings[strings.ToLower(key)]; ok {
				return value
			}
			return match
		}
		if value, ok := bindings[groups[2]]; ok {
			return value
		}
		return match
	})
}
