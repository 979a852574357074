package context

import (
	"context"

	"effix/infrastructure/i18n"
)

type translatorKey struct{}

func NewContextWithTranslator(ctx context.Context, tr *i18n.Translator) context.Context {
	return context.WithValue(ctx, translatorKey{}, tr)
}

func GetTranslatorFromContext(ctx context.Context) (*i18n.Translator, bool) {
	tr, ok := ctx.Value(translatorKey{}).(*i18n.Translator)
	return tr, ok && tr != nil
}
