package lotteryticket

import (
	"github.com/moonticket/backend/pkg/errorx"
)

const (
	MainNumbers = 4
	MinNumber   = 1
	MaxNumber   = 25
	MinMoonball = 1
	MaxMoonball = 10
)

type Ticket struct {
	Numbers  []int `json:"numbers"`
	Moonball int   `json:"moonball"`
}

// Validate checks a single ticket. Range is checked before uniqueness, so
// {1,1,2,26} is reported as out of range.
func Validate(t Ticket) error {
	if len(t.Numbers) != MainNumbers {
		return errorx.New(errorx.OutOfRange, "A ticket needs exactly %d main numbers", MainNumbers)
	}

	for _, n := range t.Numbers {
		if n < MinNumber || n > MaxNumber {
			return errorx.New(errorx.OutOfRange, "Main number %d is not in [%d, %d]", n, MinNumber, MaxNumber)
		}
	}

	if t.Moonball < MinMoonball || t.Moonball > MaxMoonball {
		return errorx.New(errorx.OutOfRange, "Moonball %d is not in [%d, %d]", t.Moonball, MinMoonball, MaxMoonball)
	}

	seen := map[int]bool{}
	for _, n := range t.Numbers {
		if seen[n] {
			return errorx.New(errorx.DuplicateNumber, "Main number %d is duplicated", n)
		}
		seen[n] = true
	}

	return nil
}

// ValidateBatch returns the error of the first invalid ticket, if any.
func ValidateBatch(tickets []Ticket) error {
	if len(tickets) == 0 {
		return errorx.New(errorx.BadRequest, "No ticket submitted")
	}

	for i, t := range tickets {
		if err := Validate(t); err != nil {
			var errx errorx.Error
			errx, _ = err.(errorx.Error)
			return errorx.New(errx.Code, "Ticket %d: %s", i+1, errx.Message)
		}
	}

	return nil
}
