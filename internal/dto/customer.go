package dto

import (
	"time"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID               *uuid.UUID `json:"id,omitempty"`
	Version          *int32     `json:"version,omitempty"`
	Name             *string    `json:"name" binding:"omitempty,max=255"`
	CreatedDate      *time.Time `json:"createdDate,omitempty"`
	LastModifiedDate *time.Time `json:"lastModifiedDate,omitempty"`
}

type CustomerPatch struct {
	Version *int32  `json:"version,omitempty"`
	Name    *string `json:"name,omitempty" binding:"omitempty,max=255"`
}
