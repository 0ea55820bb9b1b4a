package models

// SiteSettings is the singleton record holding branding, contact info,
// delivery-fee parameters and legal texts. At most one instance exists;
// creating a new one replaces whatever was stored.
type SiteSettings struct {
	ID                    string `json:"id"`
	SiteName              string `json:"site_name,omitempty"`
	LogoURL               string `json:"logo_url,omitempty"`
	BannerImage           string `json:"banner_image,omitempty"`
	BannerTitle           string `json:"banner_title,omitempty"`
	BannerSubtitle        string `json:"banner_subtitle,omitempty"`
	ContactPhone          string `json:"contact_phone,omitempty"`
	ContactWhatsapp       string `json:"contact_whatsapp,omitempty"`
	ContactEmail          string `json:"contact_email,omitempty"`
	ContactAddress        string `json:"contact_address,omitempty"`
	FacebookURL           string `json:"facebook_url,omitempty"`
	InstagramURL          string `json:"instagram_url,omitempty"`
	DeliveryFee           int    `json:"delivery_fee"`
	FreeDeliveryThreshold int    `json:"free_delivery_threshold"`
	AboutText             string `json:"about_text,omitempty"`
	CgvText               string `json:"cgv_text,omitempty"`
	ShippingPolicy        string `json:"shipping_policy,omitempty"`
	ReturnPolicy          string `json:"return_policy,omitempty"`
	PrimaryColor          string `json:"primary_color,omitempty"`
	SecondaryColor        string `json:"secondary_color,omitempty"`
	CreatedDate           string `json:"created_date"`
}

// SettingsFields is the allowlist of body fields accepted by settings
// create/update handlers.
var SettingsFields = []string{
	"site_name", "logo_url", "banner_image", "banner_title",
	"banner_subtitle", "contact_phone", "contact_whatsapp", "contact_email",
	"contact_address", "facebook_url", "instagram_url", "delivery_fee",
	"free_delivery_threshold", "about_text", "cgv_text", "shipping_policy",
	"return_policy", "primary_color", "secondary_color",
}
