// Package branding holds the product identity shared by every surface.
package branding

// AppName is the public brand shown in titles and navigation.
const AppName = "Rise Mars Digital Solutions"

// LegalName is the registered company name used in the footer copyright.
const LegalName = "Rise Mars Digital Solutions Pvt. Ltd."

// Tagline is the default meta description for pages without their own.
const Tagline = "Digital marketing agency helping businesses launch their brands to new heights."
