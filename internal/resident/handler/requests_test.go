package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"residents/internal/resident/models"
)

// CreateResidentRequestSuite tests parsing and normalization of create input.
type CreateResidentRequestSuite struct {
	suite.Suite
}

func TestCreateResidentRequestSuite(t *testing.T) {
	suite.Run(t, new(CreateResidentRequestSuite))
}

func (s *CreateResidentRequestSuite) parse(body string) (models.NewResident, error) {
	var req CreateResidentRequest
	s.Require().NoError(json.Unmarshal([]byte(body), &req))
	return req.Parse()
}

func (s *CreateResidentRequestSuite) requireReason(err error, reason models.ValidationReason) {
	s.Require().Error(err)
	var ve *models.ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Equal(reason, ve.Reason)
}

// TestNormalization verifies trimming and truncation of accepted input.
func (s *CreateResidentRequestSuite) TestNormalization() {
	s.Run("trims name and truncates age", func() {
		in, err := s.parse(`{"name":"  Jane Doe  ","age":35.7}`)
		s.Require().NoError(err)
		s.Equal(models.NewResident{Name: "Jane Doe", Age: 35}, in)
	})

	s.Run("numeric string age", func() {
		in, err := s.parse(`{"name":"Ada","age":" 42.9 "}`)
		s.Require().NoError(err)
		s.Equal(42, in.Age)
	})

	s.Run("large ages up to the exact float range", func() {
		cases := map[string]int{
			`3000000000`:         3000000000,
			`1e12`:               1000000000000,
			`9007199254740991`:   9007199254740991,
			`"9007199254740991"`: 9007199254740991,
		}
		for raw, want := range cases {
			in, err := s.parse(`{"name":"Ada","age":` + raw + `}`)
			s.Require().NoError(err, raw)
			s.Equal(want, in.Age, raw)
		}
	})

	s.Run("zero age", func() {
		in, err := s.parse(`{"name":"Ada","age":0}`)
		s.Require().NoError(err)
		s.Equal(0, in.Age)
	})

	s.Run("loosely coerced ages", func() {
		cases := map[string]int{
			`true`:   1,
			`false`:  0,
			`null`:   0,
			`""`:     0,
			`"1e2"`:  100,
			`-0`:     0,
			`"0x10"`: 16,
			`"0X1f"`: 31,
			`"0o7"`:  7,
			`"0b11"`: 3,
		}
		for raw, want := range cases {
			in, err := s.parse(`{"name":"Ada","age":` + raw + `}`)
			s.Require().NoError(err, raw)
			s.Equal(want, in.Age, raw)
		}
	})
}

// TestNameValidation verifies the name rule.
func (s *CreateResidentRequestSuite) TestNameValidation() {
	for _, body := range []string{
		`{"age":3}`,
		`{"name":"","age":3}`,
		`{"name":"   ","age":3}`,
		`{"name":null,"age":3}`,
		`{"name":42,"age":3}`,
		`{"name":["Ada"],"age":3}`,
	} {
		_, err := s.parse(body)
		s.requireReason(err, models.ReasonNameRequired)
		s.Equal(models.MessageNameRequired, err.Error())
	}
}

// TestAgeValidation verifies the age rule.
func (s *CreateResidentRequestSuite) TestAgeValidation() {
	for _, body := range []string{
		`{"name":"Ada"}`,
		`{"name":"Ada","age":-1}`,
		`{"name":"Ada","age":-0.5}`,
		`{"name":"Ada","age":"abc"}`,
		`{"name":"Ada","age":"Infinity"}`,
		`{"name":"Ada","age":"NaN"}`,
		`{"name":"Ada","age":"-0x10"}`,
		`{"name":"Ada","age":"0x"}`,
		`{"name":"Ada","age":"0xg1"}`,
		`{"name":"Ada","age":"0b12"}`,
		`{"name":"Ada","age":"0x1p4"}`,
		`{"name":"Ada","age":[1]}`,
		`{"name":"Ada","age":{}}`,
		`{"name":"Ada","age":1e400}`,
		`{"name":"Ada","age":9007199254740992}`,
		`{"name":"Ada","age":1e300}`,
	} {
		_, err := s.parse(body)
		s.requireReason(err, models.ReasonAgeInvalid)
		s.Equal(models.MessageAgeInvalid, err.Error())
	}
}

// TestFirstFailureWins verifies name is checked before age.
func (s *CreateResidentRequestSuite) TestFirstFailureWins() {
	_, err := s.parse(`{"name":" ","age":-1}`)
	s.requireReason(err, models.ReasonNameRequired)
}

func (s *CreateResidentRequestSuite) TestParseResidentID() {
	valid := map[string]int64{"1": 1, "42": 42, "7.0": 7, " 3 ": 3, "1e1": 10, "0x1": 1, "0b101": 5, "0o10": 8}
	for raw, want := range valid {
		got, ok := parseResidentID(raw)
		s.True(ok, raw)
		s.Equal(want, got, raw)
	}
	for _, raw := range []string{"abc", "", "0", "-1", "1.5", "Infinity", "NaN", "0x", "-0x1", "0x1.8p1", "1_0", "1e300"} {
		_, ok := parseResidentID(raw)
		s.False(ok, raw)
	}
}
