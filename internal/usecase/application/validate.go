package application

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	domain "bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/document"
	"bursary-portal/internal/domain/reference"
)

const (
	msgRequired       = "is required"
	msgInvalidChoice  = "select a valid choice"
	msgWrongCounty    = "does not belong to the selected county"
	msgIdentity       = "provide a national ID number or a birth certificate number"
	msgYesNo          = "must be yes or no"
	msgNonNegativeInt = "must be a whole number of zero or more"
	msgPositiveInt    = "must be a whole number greater than zero"
	msgAmount         = "must be an amount of zero or more"
	msgAmountScale    = "must have at most 2 decimal places"
	msgAmountTooLarge = "must not exceed 9,999,999,999.99"
	msgPhone          = "must be a phone number of 9 to 15 digits"
)

// Amounts are plain decimals only: no sign, exponent, NaN or Inf spellings.
var (
	rePhone   = regexp.MustCompile(`^\+?[0-9]{9,15}$`)
	reAmount  = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)
	reDecimal = regexp.MustCompile(`^[0-9]+\.[0-9]+$`)
)

// maxAmount is the largest value a decimal(12,2) column holds.
const maxAmount = 9999999999.99

var phoneFields = map[string]bool{
	domain.FieldPhone:         true,
	domain.FieldFatherPhone:   true,
	domain.FieldMotherPhone:   true,
	domain.FieldGuardianPhone: true,
	domain.FieldReferee1Phone: true,
	domain.FieldReferee2Phone: true,
}

// Text inputs copied verbatim onto the application before conditional clearing.
var textFields = []string{
	domain.FieldFullName, domain.FieldAdmissionNumber, domain.FieldNationalID, domain.FieldBirthCertNumber,
	domain.FieldDisabilityType, domain.FieldSchool, domain.FieldCourse, domain.FieldPhone,
	domain.FieldPollingStation, domain.FieldSubLocation, domain.FieldLocation, domain.FieldWard,
	domain.FieldFatherName, domain.FieldFatherPhone, domain.FieldFatherOccupation, domain.FieldFatherIDNumber,
	domain.FieldMotherName, domain.FieldMotherPhone, domain.FieldMotherOccupation, domain.FieldMotherIDNumber,
	domain.FieldFatherDeathCertNumber, domain.FieldMotherDeathCertNumber,
	domain.FieldGuardianName, domain.FieldGuardianPhone, domain.FieldGuardianOccupation,
	domain.FieldSiblingsHighSchool, domain.FieldSiblingsCollege, domain.FieldSiblingsUniversity,
	domain.FieldReferee1Name, domain.FieldReferee1Phone, domain.FieldReferee2Name, domain.FieldReferee2Phone,
}

// Validator is the conditional rule engine for application submissions.
type Validator struct {
	refs reference.Repository
}

func NewValidator(refs reference.Repository) *Validator { return &Validator{refs: refs} }

// check accumulates field errors for one submission. Every rule runs; nothing short-circuits.
type check struct {
	sub  Submission
	errs domain.FieldErrors
}

func (c *check) require(field string) string {
	v := c.sub.value(field)
	if v == "" {
		c.errs.Add(field, msgRequired)
	}
	return v
}

func (c *check) requireFile(field string) {
	if _, ok := c.sub.file(field); !ok {
		c.errs.Add(field, msgRequired)
	}
}

// requireField handles both text and document fields of a conditional branch.
func (c *check) requireField(field string) {
	if domain.IsDocumentField(field) {
		c.requireFile(field)
		return
	}
	c.require(field)
}

func (c *check) phone(field string) {
	v := c.sub.value(field)
	if v == "" {
		return
	}
	if !rePhone.MatchString(strings.ReplaceAll(v, " ", "")) {
		c.errs.Add(field, msgPhone)
	}
}

func (c *check) id(field string) (uint64, bool) {
	v := c.require(field)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil || n == 0 {
		c.errs.Add(field, msgInvalidChoice)
		return 0, false
	}
	return n, true
}

func (c *check) integer(field string, required, positive bool) int {
	v := c.sub.value(field)
	if v == "" {
		if required {
			c.errs.Add(field, msgRequired)
		}
		return 0
	}
	n, err := strconv.Atoi(v)
	switch {
	case err != nil || n < 0:
		c.errs.Add(field, msgNonNegativeInt)
		return 0
	case positive && n == 0:
		c.errs.Add(field, msgPositiveInt)
		return 0
	}
	return n
}

func (c *check) amount(field string, required bool) float64 {
	v := strings.ReplaceAll(c.sub.value(field), ",", "")
	if v == "" {
		if required {
			c.errs.Add(field, msgRequired)
		}
		return 0
	}
	if !reAmount.MatchString(v) {
		if reDecimal.MatchString(v) {
			c.errs.Add(field, msgAmountScale)
		} else {
			c.errs.Add(field, msgAmount)
		}
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	switch {
	case err != nil:
		c.errs.Add(field, msgAmount)
		return 0
	case f > maxAmount:
		c.errs.Add(field, msgAmountTooLarge)
		return 0
	}
	return f
}

// Validate runs every rule against sub. Field problems come back in the FieldErrors map;
// a non-nil error means the reference store itself failed and nothing can be concluded.
func (v *Validator) Validate(ctx context.Context, sub Submission) (*Draft, domain.FieldErrors, error) {
	c := &check{sub: sub, errs: domain.FieldErrors{}}
	app := &domain.Application{Status: domain.StatusPending}

	for _, f := range textFields {
		*app.TextField(f) = sub.value(f)
	}

	// 1. classification
	if err := v.classification(ctx, c, app); err != nil {
		return nil, nil, err
	}

	// 2. identity names
	c.require(domain.FieldFullName)
	c.require(domain.FieldAdmissionNumber)

	// 3. identity documents
	if app.NationalID == "" && app.BirthCertNumber == "" {
		c.errs.Add(domain.FieldNationalID, msgIdentity)
	}
	c.requireFile(domain.FieldIDDocument)

	// 4. disability branch
	switch strings.ToLower(sub.value(domain.FieldDisability)) {
	case "yes":
		app.HasDisability = true
	case "no", "":
	default:
		c.errs.Add(domain.FieldDisability, msgYesNo)
	}
	for _, f := range domain.ActiveDisabilityFields(app.HasDisability) {
		c.requireField(f)
	}
	if !app.HasDisability {
		app.ClearField(domain.FieldDisabilityType)
	}

	// 5. education
	c.require(domain.FieldSchool)
	c.require(domain.FieldCourse)
	c.require(domain.FieldPhone)
	app.YearOfStudy = c.integer(domain.FieldYearOfStudy, true, true)
	app.AmountRequested = c.amount(domain.FieldAmountRequested, true)
	app.AnnualFee = c.amount(domain.FieldAnnualFee, false)
	c.requireFile(domain.FieldDocument)

	// 6. geo
	c.require(domain.FieldPollingStation)
	c.require(domain.FieldSubLocation)
	c.require(domain.FieldLocation)
	c.require(domain.FieldWard)

	// 7. family branch
	active := map[string]bool{}
	if raw := c.require(domain.FieldFamilyStatus); raw != "" {
		fs, ok := domain.ParseFamilyStatus(raw)
		if !ok {
			c.errs.Add(domain.FieldFamilyStatus, msgInvalidChoice)
		} else {
			app.FamilyStatus = fs
			for _, f := range domain.ActiveFamilyFields(fs) {
				active[f] = true
				c.requireField(f)
			}
		}
	}
	for _, f := range domain.FamilyFields() {
		if !active[f] {
			app.ClearField(f)
		}
	}

	// 8. siblings: the count is mandatory, the per-tier lists are not.
	app.SiblingCount = c.integer(domain.FieldSiblingCount, true, false)

	// 9. referees
	c.require(domain.FieldReferee1Name)
	c.require(domain.FieldReferee1Phone)
	c.require(domain.FieldReferee2Name)
	c.require(domain.FieldReferee2Phone)

	for f := range phoneFields {
		if app.TextField(f) != nil && *app.TextField(f) != "" {
			c.phone(f)
		}
	}

	if len(c.errs) > 0 {
		return nil, c.errs, nil
	}
	return &Draft{Application: app, Uploads: collectUploads(sub, app, active)}, nil, nil
}

func (v *Validator) classification(ctx context.Context, c *check, app *domain.Application) error {
	countyID, countyOK := c.id(domain.FieldCounty)
	constituencyID, constituencyOK := c.id(domain.FieldConstituency)
	levelID, levelOK := c.id(domain.FieldLevelOfStudy)

	if countyOK {
		if _, err := v.refs.GetCounty(ctx, countyID); err != nil {
			if !reference.IsNotFound(err) {
				return domain.Upstream("load county", err)
			}
			c.errs.Add(domain.FieldCounty, msgInvalidChoice)
			countyOK = false
		}
	}
	if constituencyOK {
		con, err := v.refs.GetConstituency(ctx, constituencyID)
		switch {
		case err != nil && !reference.IsNotFound(err):
			return domain.Upstream("load constituency", err)
		case err != nil:
			c.errs.Add(domain.FieldConstituency, msgInvalidChoice)
		case countyOK && con.CountyID != countyID:
			c.errs.Add(domain.FieldConstituency, msgWrongCounty)
		}
	}
	if levelOK {
		if _, err := v.refs.GetLevel(ctx, levelID); err != nil {
			if !reference.IsNotFound(err) {
				return domain.Upstream("load level of study", err)
			}
			c.errs.Add(domain.FieldLevelOfStudy, msgInvalidChoice)
		}
	}

	app.CountyID = countyID
	app.ConstituencyID = constituencyID
	app.LevelOfStudyID = levelID
	return nil
}

// collectUploads keeps only the files whose branch is active; inactive ones are dropped.
func collectUploads(sub Submission, app *domain.Application, familyActive map[string]bool) map[string]document.File {
	out := map[string]document.File{}
	for _, f := range domain.DocumentFields {
		switch f {
		case domain.FieldDisabilityDocument:
			if !app.HasDisability {
				continue
			}
		case domain.FieldFatherDeathCertificate, domain.FieldMotherDeathCertificate:
			if !familyActive[f] {
				continue
			}
		}
		if file, ok := sub.file(f); ok {
			out[f] = file
		}
	}
	return out
}

// ActiveFieldset exposes the same branch decisions to any rendering layer.
func ActiveFieldset(familyStatus, disability string) Fieldset {
	fs, _ := domain.ParseFamilyStatus(familyStatus)
	has := strings.EqualFold(strings.TrimSpace(disability), "yes")
	out := Fieldset{
		FamilyStatus:     string(fs),
		FamilyFields:     domain.ActiveFamilyFields(fs),
		Disability:       has,
		DisabilityFields: domain.ActiveDisabilityFields(has),
	}
	if out.FamilyFields == nil {
		out.FamilyFields = []string{}
	}
	if out.DisabilityFields == nil {
		out.DisabilityFields = []string{}
	}
	return out
}
