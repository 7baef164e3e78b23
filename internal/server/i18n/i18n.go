// Package i18n negotiates the response language of an RPC and renders the
// user-facing confirmation messages in it. Bulgarian is the default.
package i18n

import (
	"context"
	"strings"

	"github.com/domunity/backend/internal/common"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"google.golang.org/grpc/metadata"
)

// Message keys.
const (
	ContactSubmitted      = "contact.submitted"
	NewsletterSubscribed  = "newsletter.subscribed"
	OfferReceived         = "offer.received"
	PresentationConfirmed = "presentation.confirmed"
)

var supported = []language.Tag{
	language.Bulgarian,
	language.English,
}

var matcher = language.NewMatcher(supported)

var messages = func() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Bulgarian))
	set := func(tag language.Tag, key, msg string) {
		if err := b.SetString(tag, key, msg); err != nil {
			panic(err)
		}
	}

	set(language.Bulgarian, ContactSubmitted, "Вашето съобщение е изпратено успешно! Ще се свържем с вас скоро.")
	set(language.Bulgarian, NewsletterSubscribed, "Успешно се абонирахте за нашия бюлетин!")
	set(language.Bulgarian, OfferReceived, "Вашата заявка за оферта е получена! Ще се свържем с вас в най-скоро време.")
	set(language.Bulgarian, PresentationConfirmed, "Вашата заявка за презентация на %s е потвърдена!")

	set(language.English, ContactSubmitted, "Your message has been sent successfully! We will contact you soon.")
	set(language.English, NewsletterSubscribed, "You have successfully subscribed to our newsletter!")
	set(language.English, OfferReceived, "Your offer request has been received! We will contact you as soon as possible.")
	set(language.English, PresentationConfirmed, "Your presentation request for %s is confirmed!")
	return b
}()

// Default returns the language used when negotiation yields nothing.
func Default() language.Tag {
	return supported[0]
}

// Supported returns a copy of the supported language tags.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Match picks the best supported tag for an Accept-Language value.
func Match(acceptLanguage string) language.Tag {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return supported[idx]
}

type localeKey struct{}

// WithLocale stores tag on ctx.
func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeKey{}, tag)
}

// FromContext returns the negotiated tag, or Default.
func FromContext(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(localeKey{}).(language.Tag); ok {
		return tag
	}
	return Default()
}

// FromIncomingMetadata negotiates the locale from the accept-language
// metadata of an incoming RPC.
func FromIncomingMetadata(ctx context.Context) language.Tag {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return Default()
	}
	vals := md.Get(common.AcceptLanguageHeaderName)
	if len(vals) == 0 {
		return Default()
	}
	return Match(strings.Join(vals, ","))
}

// Sprintf renders the message key in the locale carried by ctx.
func Sprintf(ctx context.Context, key string, args ...any) string {
	p := message.NewPrinter(FromContext(ctx), message.Catalog(messages))
	return p.Sprintf(key, args...)
}
