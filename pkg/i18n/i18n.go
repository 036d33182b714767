package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Catálogo de mensagens voltadas ao usuário final (SMS, confirmações).
// As chaves são estáveis; os textos variam por idioma.
var catalog = map[language.Tag]map[string]string{
	language.BrazilianPortuguese: {
		"auth.recover_token_sms":  "Caramelo: seu código de recuperação é {token}. Ele expira em {minutes} minutos.",
		"auth.password_updated":   "Senha atualizada com sucesso.",
		"auth.token_validated":    "Código validado com sucesso.",
		"auth.recover_token_sent": "Se o telefone estiver cadastrado, você receberá um SMS com o código.",
		"consumer.created":        "Consumidor cadastrado com sucesso.",
		"consumer.removed":        "Consumidor removido com sucesso.",
		"card.removed":            "Cartão removido com sucesso.",
		"company.removed":         "Empresa removida com sucesso.",
	},
	language.English: {
		"auth.recover_token_sms":  "Caramelo: your recovery code is {token}. It expires in {minutes} minutes.",
		"auth.password_updated":   "Password updated successfully.",
		"auth.token_validated":    "Code validated successfully.",
		"auth.recover_token_sent": "If the phone is registered, you will receive an SMS with the code.",
		"consumer.created":        "Consumer registered successfully.",
		"consumer.removed":        "Consumer removed successfully.",
		"card.removed":            "Card removed successfully.",
		"company.removed":         "Company removed successfully.",
	},
}

var matcher = language.NewMatcher([]language.Tag{
	language.BrazilianPortuguese, // padrão
	language.English,
})

// Localizer resolve chaves de mensagem para um idioma preferido.
type Localizer struct {
	tag language.Tag
}

// New cria um Localizer a partir de um header Accept-Language (vazio -> pt-BR).
func New(acceptLanguage string) *Localizer {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return &Localizer{tag: language.BrazilianPortuguese}
	}
	_, idx, _ := matcher.Match(tags...)
	switch idx {
	case 1:
		return &Localizer{tag: language.English}
	default:
		return &Localizer{tag: language.BrazilianPortuguese}
	}
}

// Localize devolve a mensagem da chave com os parâmetros interpolados ({nome}).
// Chave desconhecida devolve a própria chave, para não esconder o erro.
func (l *Localizer) Localize(key string, params map[string]string) string {
	msgs, ok := catalog[l.tag]
	if !ok {
		msgs = catalog[language.BrazilianPortuguese]
	}
	msg, ok := msgs[key]
	if !ok {
		return key
	}
	for k, v := range params {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}
