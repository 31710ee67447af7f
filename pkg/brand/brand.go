// Package brand holds company-wide constants shared across the support app.
package brand

const (
	// CompanyName is the installer the app supports customers of.
	CompanyName = "SoundVision"

	// SupportPhone is the human support line offered on every fallback path.
	SupportPhone = "704-696-2792"

	// SupportEmail is the support mailbox shown on the contact screen.
	SupportEmail = "support@svavnc.com"

	// Website is the public company site.
	Website = "www.svavnc.com"

	// GoogleReviewURL is the direct review link used by the feedback screen.
	GoogleReviewURL = "https://g.page/r/CaqR7elEWs8UEBM/review"

	// Tagline is the company tagline the assistant is asked to echo.
	Tagline = "Simplifying life through technology"
)
