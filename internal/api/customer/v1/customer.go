// Package customerv1 holds the customer.v1 service contract. The types mirror
// customer.proto field for field and travel over the json codec.
package customerv1

type ShippingAddress struct {
	Address string `json:"address,omitempty"`
	Country string `json:"country,omitempty"`
}

func (x *ShippingAddress) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *ShippingAddress) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

type PaymentMethod struct {
	CreditCardNumber string `json:"credit_card_number,omitempty"`
	CreditCardType   string `json:"credit_card_type,omitempty"`
}

func (x *PaymentMethod) GetCreditCardNumber() string {
	if x != nil {
		return x.CreditCardNumber
	}
	return ""
}

func (x *PaymentMethod) GetCreditCardType() string {
	if x != nil {
		return x.CreditCardType
	}
	return ""
}

type CreateCustomerRequest struct {
	FullName       string           `json:"full_name,omitempty"`
	Email          string           `json:"email,omitempty"`
	Password       string           `json:"password,omitempty"`
	Address        *ShippingAddress `json:"address,omitempty"`
	PaymentMethods []*PaymentMethod `json:"payment_methods,omitempty"`
}

func (x *CreateCustomerRequest) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *CreateCustomerRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateCustomerRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

func (x *CreateCustomerRequest) GetAddress() *ShippingAddress {
	if x != nil {
		return x.Address
	}
	return nil
}

func (x *CreateCustomerRequest) GetPaymentMethods() []*PaymentMethod {
	if x != nil {
		return x.PaymentMethods
	}
	return nil
}

type CustomerResponse struct {
	Id       string `json:"id,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

func (x *CustomerResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CustomerResponse) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *CustomerResponse) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

// ErrorInfo reason attached to AlreadyExists statuses.
const (
	ErrorDomain           = "customer.v1"
	ReasonCustomerExists  = "CUSTOMER_ALREADY_EXISTS"
	ErrorMetadataEmailKey = "email"
)
