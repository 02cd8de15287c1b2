package loader

// Field names of insurance and medical records as they appear in the
// source files.
const (
	FieldProductName     = "产品名称"
	FieldAgeLimit        = "适用年龄"
	FieldSpecialNote     = "特别说明"
	FieldCoveredDiseases = "且覆盖疾病"

	FieldDiseaseName = "疾病名称"
	FieldDepartment  = "相关科室"
	FieldDrugs       = "常用药物"
	FieldDiet        = "饮食建议"
	FieldCare        = "护理建议"
)

// Record is a normalized flat record: field name to text value.
type Record map[string]string

// Get returns the value of field, or "" when the field is missing.
func (r Record) Get(field string) string {
	return r[field]
}

// CareRecord is a residential-care facility with typed list fields.
type CareRecord struct {
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Services   []string `json:"services"`
	PriceRange string   `json:"price_range"`
}

// Batches holds the normalized records of every domain for one build run.
type Batches struct {
	Insurance []Record
	Medical   []Record
	Care      []CareRecord
}

// Len returns the total number of records.
func (b Batches) Len() int {
	return len(b.Insurance) + len(b.Medical) + len(b.Care)
}
