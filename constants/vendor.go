package constants

import "strings"

// Vendor identifies a supported price-list supplier.
type Vendor string

// Stable values (store these exact strings in DB).
const (
	VendorAudierne      Vendor = "AUDIERNE"
	VendorHennequin     Vendor = "HENNEQUIN"
	VendorLaurentDaniel Vendor = "LAURENT_DANIEL"
	VendorVVQM          Vendor = "VVQM"
	VendorDemarne       Vendor = "DEMARNE"
)

var allVendors = []Vendor{
	VendorAudierne,
	VendorHennequin,
	VendorLaurentDaniel,
	VendorVVQM,
	VendorDemarne,
}

func VendorNames() []string {
	result := make([]string, len(allVendors))
	for i, v := range allVendors {
		result[i] = string(v)
	}
	return result
}

// ParseVendor resolves user input ("laurent-daniel", "vvqm") to a Vendor.
func ParseVendor(input string) (Vendor, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")
	for _, v := range allVendors {
		if normalized == string(v) {
			return v, true
		}
	}
	return "", false
}
