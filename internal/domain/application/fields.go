package application

// Form field names. They double as error keys.
const (
	FieldCounty       = "county"
	FieldConstituency = "constituency"
	FieldLevelOfStudy = "level_of_study"

	FieldFullName        = "full_name"
	FieldAdmissionNumber = "admission_number"
	FieldNationalID      = "national_id_number"
	FieldBirthCertNumber = "birth_certificate_number"
	FieldIDDocument      = "id_document"

	FieldDisability         = "disability"
	FieldDisabilityType     = "disability_type"
	FieldDisabilityDocument = "disability_document"

	FieldSchool          = "school"
	FieldCourse          = "course"
	FieldYearOfStudy     = "year_of_study"
	FieldPhone           = "phone"
	FieldAmountRequested = "amount_requested"
	FieldAnnualFee       = "annual_fee"
	FieldDocument        = "document"
	FieldTranscript      = "transcript"

	FieldPollingStation = "polling_station"
	FieldSubLocation    = "sub_location"
	FieldLocation       = "location"
	FieldWard           = "ward"

	FieldFamilyStatus = "family_status"

	FieldFatherName       = "father_name"
	FieldFatherPhone      = "father_phone"
	FieldFatherOccupation = "father_occupation"
	FieldFatherIDNumber   = "father_id_number"
	FieldMotherName       = "mother_name"
	FieldMotherPhone      = "mother_phone"
	FieldMotherOccupation = "mother_occupation"
	FieldMotherIDNumber   = "mother_id_number"

	FieldFatherDeathCertNumber  = "father_death_cert_number"
	FieldFatherDeathCertificate = "father_death_certificate"
	FieldMotherDeathCertNumber  = "mother_death_cert_number"
	FieldMotherDeathCertificate = "mother_death_certificate"

	FieldGuardianName       = "guardian_name"
	FieldGuardianPhone      = "guardian_phone"
	FieldGuardianOccupation = "guardian_occupation"

	FieldSiblingCount       = "sibling_count"
	FieldSiblingsHighSchool = "siblings_high_school"
	FieldSiblingsCollege    = "siblings_college"
	FieldSiblingsUniversity = "siblings_university"

	FieldReferee1Name  = "referee1_name"
	FieldReferee1Phone = "referee1_phone"
	FieldReferee2Name  = "referee2_name"
	FieldReferee2Phone = "referee2_phone"
)

type FamilyStatus string

const (
	FamilyBothAlive    FamilyStatus = "both_alive"
	FamilyMotherDead   FamilyStatus = "mother_dead"
	FamilyFatherDead   FamilyStatus = "father_dead"
	FamilySingleMother FamilyStatus = "single_mother"
	FamilySingleFather FamilyStatus = "single_father"
	FamilyOrphan       FamilyStatus = "orphan"
)

// FamilyStatuses lists every accepted value, in form order.
var FamilyStatuses = []FamilyStatus{
	FamilyBothAlive, FamilyMotherDead, FamilyFatherDead,
	FamilySingleMother, FamilySingleFather, FamilyOrphan,
}

func ParseFamilyStatus(s string) (FamilyStatus, bool) {
	for _, fs := range FamilyStatuses {
		if string(fs) == s {
			return fs, true
		}
	}
	return "", false
}

var (
	fatherFields = []string{FieldFatherName, FieldFatherPhone, FieldFatherOccupation, FieldFatherIDNumber}
	motherFields = []string{FieldMotherName, FieldMotherPhone, FieldMotherOccupation, FieldMotherIDNumber}

	fatherDeathFields = []string{FieldFatherDeathCertNumber, FieldFatherDeathCertificate}
	motherDeathFields = []string{FieldMotherDeathCertNumber, FieldMotherDeathCertificate}

	guardianFields = []string{FieldGuardianName, FieldGuardianPhone, FieldGuardianOccupation}
)

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// ActiveFamilyFields is the single source of truth for which family fields are shown
// and required for a given status. Unknown statuses activate nothing.
func ActiveFamilyFields(fs FamilyStatus) []string {
	switch fs {
	case FamilyBothAlive:
		return concat(fatherFields, motherFields)
	case FamilyMotherDead:
		return concat(fatherFields, motherDeathFields)
	case FamilyFatherDead:
		return concat(motherFields, fatherDeathFields)
	case FamilySingleMother:
		return concat(motherFields)
	case FamilySingleFather:
		return concat(fatherFields)
	case FamilyOrphan:
		return concat(guardianFields, fatherDeathFields, motherDeathFields)
	}
	return nil
}

// FamilyFields is every field any family status can activate.
func FamilyFields() []string {
	return concat(fatherFields, motherFields, fatherDeathFields, motherDeathFields, guardianFields)
}

// ActiveDisabilityFields mirrors ActiveFamilyFields for the disability branch.
func ActiveDisabilityFields(hasDisability bool) []string {
	if !hasDisability {
		return nil
	}
	return []string{FieldDisabilityType, FieldDisabilityDocument}
}

// DocumentFields are uploaded files rather than text inputs.
var DocumentFields = []string{
	FieldIDDocument, FieldDocument, FieldTranscript, FieldDisabilityDocument,
	FieldFatherDeathCertificate, FieldMotherDeathCertificate,
}

func IsDocumentField(name string) bool {
	for _, f := range DocumentFields {
		if f == name {
			return true
		}
	}
	return false
}
