// Package productv1 holds the product.v1 service contract. The types mirror
// product.proto field for field and travel over the json codec.
package productv1

// ProductResponse is a catalog entry. PricePerUnit is a decimal string.
type ProductResponse struct {
	Id           string `json:"id,omitempty"`
	Reference    string `json:"reference,omitempty"`
	Name         string `json:"name,omitempty"`
	PricePerUnit string `json:"price_per_unit,omitempty"`
}

func (x *ProductResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ProductResponse) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}

func (x *ProductResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ProductResponse) GetPricePerUnit() string {
	if x != nil {
		return x.PricePerUnit
	}
	return ""
}
