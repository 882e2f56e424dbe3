package site

import "fmt"

// Content is the marketing copy for the public pages, served as data so the
// front end stays free of hardcoded text.
type Content struct {
	BannerPhrases      []string `json:"bannerPhrases"`
	IntroHeading       string   `json:"introHeading"`
	IntroText          string   `json:"introText"`
	CertificationPitch string   `json:"certificationPitch"`
	FeePerArtworkUSD   int      `json:"feePerArtworkUsd"`
	TurnaroundNote     string   `json:"turnaroundNote"`
}

// Home returns the home-page copy with the current per-artwork fee filled in.
func Home(fee int) Content {
	return Content{
		BannerPhrases: []string{
			"Official Artwork Certification",
			"Official Artwork Certification Service",
			"Recognized Internationally",
		},
		IntroHeading: "Authenticity in Art",
		IntroText: "Every masterpiece deserves recognition. PolygonGallery provides " +
			"independent art certification, ensuring authenticity and credibility " +
			"for artists and collectors worldwide.",
		CertificationPitch: fmt.Sprintf("Certify your artworks with official Certificates of Authenticity, "+
			"recognized internationally. Each certificate is $%d per artwork.", fee),
		FeePerArtworkUSD: fee,
		TurnaroundNote:   "Certification takes 2-3 business days for a batch of artworks.",
	}
}
