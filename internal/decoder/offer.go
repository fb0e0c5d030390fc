package decoder

// Offer is model for offer items in XML feed files.
type Offer struct {
	ID    string `xml:"id,attr"`
	Name  string `xml:"name"`
	Price string `xml:"price"`
	Count string `xml:"count"`
}
