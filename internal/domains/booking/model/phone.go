package model

import (
	"busticket/shared/failure"
	"busticket/shared/validator"
	"fmt"
	"strings"
)

// PhonePolicy decides which contact numbers a new booking accepts.
type PhonePolicy string

const (
	// PhonePolicyStrict accepts at least ten ASCII digits and nothing else.
	PhonePolicyStrict PhonePolicy = "strict"
	// PhonePolicyLenient accepts any string, including an empty one.
	PhonePolicyLenient PhonePolicy = "lenient"

	strictPhoneTag = "number,min=10"
)

func ParsePhonePolicy(value string) (PhonePolicy, error) {
	switch policy := PhonePolicy(strings.ToLower(strings.TrimSpace(value))); policy {
	case PhonePolicyStrict, PhonePolicyLenient:
		return policy, nil
	case "":
		return PhonePolicyStrict, nil
	default:
		return PhonePolicyStrict, fmt.Errorf("unknown phone policy %q", value)
	}
}

// Validate returns failure.InvalidPhone when phone breaks the policy.
func (p PhonePolicy) Validate(phone string) error {
	if p == PhonePolicyLenient {
		return nil
	}

	if err := validator.ValidateVar(phone, strictPhoneTag); err != nil {
		return failure.InvalidPhone
	}

	return nil
}
