// Package messages holds the localized copy used in outbound emails and API
// responses. Keys form a closed set so a missing translation is caught by the
// catalog test instead of leaking a raw key to a recipient.
package messages

type Locale string

const (
	LocaleSpanish Locale = "es"
	LocaleEnglish Locale = "en"

	// DefaultLocale matches the original landing page, which shipped its
	// transactional emails in Spanish.
	DefaultLocale = LocaleSpanish
)

type Key string

const (
	KeySignupConfirmed Key = "signup.confirmed"

	// AdminSubject carries a %s for the submitter name.
	KeyAdminSubject   Key = "admin.subject"
	KeyAdminTitle     Key = "admin.title"
	KeyAdminNameLabel Key = "admin.label.name"
	KeyAdminMailLabel Key = "admin.label.email"
	KeyAdminDateLabel Key = "admin.label.date"
	KeyAdminFootnote  Key = "admin.footnote"

	KeyWelcomeSubject   Key = "welcome.subject"
	KeyWelcomeGreeting  Key = "welcome.greeting" // carries a %s for the name
	KeyWelcomeIntro     Key = "welcome.intro"
	KeyWelcomeNextTitle Key = "welcome.next.title"
	KeyWelcomeNextOne   Key = "welcome.next.1"
	KeyWelcomeNextTwo   Key = "welcome.next.2"
	KeyWelcomeNextThree Key = "welcome.next.3"
	KeyWelcomeCTATitle  Key = "welcome.cta.title"
	KeyWelcomeCTABody   Key = "welcome.cta.body"
	KeyWelcomeCTAButton Key = "welcome.cta.button"
	KeyWelcomeCTAHint   Key = "welcome.cta.hint"
	KeyWelcomeContact   Key = "welcome.contact"
	KeyWelcomeFooter    Key = "welcome.footer"
)

// Keys lists every message key; the catalog test checks each locale covers
// all of them.
var Keys = []Key{
	KeySignupConfirmed,
	KeyAdminSubject, KeyAdminTitle, KeyAdminNameLabel, KeyAdminMailLabel,
	KeyAdminDateLabel, KeyAdminFootnote,
	KeyWelcomeSubject, KeyWelcomeGreeting, KeyWelcomeIntro,
	KeyWelcomeNextTitle, KeyWelcomeNextOne, KeyWelcomeNextTwo, KeyWelcomeNextThree,
	KeyWelcomeCTATitle, KeyWelcomeCTABody, KeyWelcomeCTAButton, KeyWelcomeCTAHint,
	KeyWelcomeContact, KeyWelcomeFooter,
}

var catalog = map[Locale]map[Key]string{
	LocaleSpanish: {
		KeySignupConfirmed: "Emails enviados exitosamente",

		KeyAdminSubject:   "Nueva suscripción a la lista de espera - %s",
		KeyAdminTitle:     "Nueva suscripción a Xiorelia",
		KeyAdminNameLabel: "Nombre",
		KeyAdminMailLabel: "Email",
		KeyAdminDateLabel: "Fecha",
		KeyAdminFootnote:  "Este usuario se ha registrado en la lista de espera para acceso temprano a Xiorelia.",

		KeyWelcomeSubject:   "¡Bienvenido a la lista de espera de Xiorelia!",
		KeyWelcomeGreeting:  "¡Hola %s!",
		KeyWelcomeIntro:     "Gracias por unirte a nuestra lista de espera. Estamos emocionados de tenerte a bordo.",
		KeyWelcomeNextTitle: "¿Qué sigue?",
		KeyWelcomeNextOne:   "Serás uno de los primeros en probar Xiorelia",
		KeyWelcomeNextTwo:   "Recibirás acceso exclusivo antes del lanzamiento público",
		KeyWelcomeNextThree: "Te mantendremos actualizado sobre nuestro progreso",
		KeyWelcomeCTATitle:  "🚀 ¡Completa tu Pre-inscripción!",
		KeyWelcomeCTABody:   "Para asegurar tu lugar en la lista de espera y recibir acceso prioritario, completa tu pre-inscripción:",
		KeyWelcomeCTAButton: "✨ Completar Pre-inscripción",
		KeyWelcomeCTAHint:   "Solo toma 2 minutos y asegura tu acceso prioritario",
		KeyWelcomeContact:   "Si tienes alguna pregunta, no dudes en contactarnos.",
		KeyWelcomeFooter:    "© 2025 Xiorelia. Todos los derechos reservados.",
	},
	LocaleEnglish: {
		KeySignupConfirmed: "Emails sent successfully",

		KeyAdminSubject:   "New waitlist signup - %s",
		KeyAdminTitle:     "New Xiorelia signup",
		KeyAdminNameLabel: "Name",
		KeyAdminMailLabel: "Email",
		KeyAdminDateLabel: "Date",
		KeyAdminFootnote:  "This user joined the waitlist for early access to Xiorelia.",

		KeyWelcomeSubject:   "Welcome to the Xiorelia waitlist!",
		KeyWelcomeGreeting:  "Hi %s!",
		KeyWelcomeIntro:     "Thanks for joining our waitlist. We are excited to have you on board.",
		KeyWelcomeNextTitle: "What's next?",
		KeyWelcomeNextOne:   "You will be among the first to try Xiorelia",
		KeyWelcomeNextTwo:   "You will get exclusive access before the public launch",
		KeyWelcomeNextThree: "We will keep you posted on our progress",
		KeyWelcomeCTATitle:  "🚀 Complete your pre-registration!",
		KeyWelcomeCTABody:   "To secure your spot on the waitlist and receive priority access, complete your pre-registration:",
		KeyWelcomeCTAButton: "✨ Complete pre-registration",
		KeyWelcomeCTAHint:   "It only takes 2 minutes and secures your priority access",
		KeyWelcomeContact:   "If you have any questions, do not hesitate to reach out.",
		KeyWelcomeFooter:    "© 2025 Xiorelia. All rights reserved.",
	},
}

// ParseLocale maps a request lang value to a supported locale, falling back
// to the default for anything unknown.
func ParseLocale(lang string) Locale {
	switch Locale(lang) {
	case LocaleEnglish:
		return LocaleEnglish
	case LocaleSpanish:
		return LocaleSpanish
	default:
		return DefaultLocale
	}
}

// Lookup returns the message for the given locale and key, falling back to
// the default locale when the locale has no entry.
func Lookup(loc Locale, k Key) string {
	if msg, ok := catalog[loc][k]; ok {
		return msg
	}
	return catalog[DefaultLocale][k]
}
