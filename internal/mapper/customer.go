package mapper

import (
	"beer-service/internal/domain/customer"
	"beer-service/internal/dto"
)

func CustomerToDTO(c *customer.Customer) dto.CustomerDTO {
	return dto.CustomerDTO{
		ID:               idPtr(c.ID),
		Version:          versionPtr(c.Version),
		Name:             copyString(c.Name),
		CreatedDate:      timePtr(c.CreatedDate),
		LastModifiedDate: timePtr(c.LastModifiedDate),
	}
}

func CustomerFromDTO(d dto.CustomerDTO) *customer.Customer {
	c := &customer.Customer{
		Name: copyString(d.Name),
	}
	if d.ID != nil {
		c.ID = *d.ID
	}
	if d.Version != nil {
		c.Version = *d.Version
	}
	if d.CreatedDate != nil {
		c.CreatedDate = *d.CreatedDate
	}
	if d.LastModifiedDate != nil {
		c.LastModifiedDate = *d.LastModifiedDate
	}
	return c
}

func CustomerListToDTO(customers []*customer.Customer) []dto.CustomerDTO {
	out := make([]dto.CustomerDTO, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerToDTO(c))
	}
	return out
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
