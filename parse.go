package laurent

import (
	"strconv"
	"strings"
)

// Parse reads a sum of terms like "3*x^2 - x + 5*x^-2" into a Laurent
// polynomial. Coefficients are decimal integers mapped through the base
// ring's FromInt64; the variable must match the ring's. The '*' between
// coefficient and variable is optional.
func Parse[E any](r *Ring[E], input string) (*Polynomial[E], error) {
	s := strings.ReplaceAll(input, " ", "")
	if s == "" {
		return nil, ErrParse
	}

	res := r.Zero()

	i := 0
	for i < len(s) {
		sign := int64(1)
		for i < len(s) && (s[i] == '+' || s[i] == '-') {
			if s[i] == '-' {
				sign = -sign
			}
			i++
		}

		if i == len(s) {
			return nil, ErrParse
		}

		coeff := int64(1)
		hasCoeff := false

		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}

		if j > i {
			n, err := strconv.ParseInt(s[i:j], 10, 64)
			if err != nil {
				return nil, ErrParse
			}

			coeff = n
			hasCoeff = true
			i = j
		}

		hasStar := false
		if i < len(s) && s[i] == '*' {
			i++
			if !hasCoeff {
				return nil, ErrParse
			}

			hasStar = true
		}

		exp := 0
		if strings.HasPrefix(s[i:], r.variable) {
			i += len(r.variable)
			exp = 1

			if i < len(s) && s[i] == '^' {
				i++

				k := i
				if k < len(s) && s[k] == '-' {
					k++
				}
				for k < len(s) && s[k] >= '0' && s[k] <= '9' {
					k++
				}

				n, err := strconv.Atoi(s[i:k])
				if err != nil {
					return nil, ErrParse
				}

				exp = n
				i = k
			}
		} else if !hasCoeff || hasStar {
			return nil, ErrParse
		}

		res = res.Add(r.Monomial(r.Base().FromInt64(sign*coeff), exp))
	}

	return res, nil
}
