package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memLoader map[string]string

func (m memLoader) GetFileText(ctx context.Context, file GraphFile) ([]byte, error) {
	content, ok := m[file.FilePath]
	if !ok {
		return nil, errors.New("not found")
	}
	return []byte(content), nil
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", nil},
		{"ASCII", "恶性肿瘤,心肌梗死", []string{"恶性肿瘤", "心肌梗死"}},
		{"FullWidth", "恶性肿瘤，心肌梗死", []string{"恶性肿瘤", "心肌梗死"}},
		{"Mixed", "恶性肿瘤， 心肌梗死,高血压", []string{"恶性肿瘤", "心肌梗死", "高血压"}},
		{"EmptyTokens", "，,恶性肿瘤,, ，", []string{"恶性肿瘤"}},
		{"OnlyDelimiters", " , ，", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitList(tc.in)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSplitListDelimitersAgree(t *testing.T) {
	assert.Equal(t, SplitList("a， b ，c"), SplitList("a, b ,c"))
}

func TestParseTextBlocks(t *testing.T) {
	content := "\ufeff产品名称: 泰康全能保\r\n适用年龄: 18-65岁\r\n且覆盖疾病: 恶性肿瘤，心肌梗死\r\n特别说明: 高血压患者需核保\r\n\r\n" +
		"产品名称：银发无忧防癌险\n适用年龄: 50-80岁\n无分隔行\n\n\n" +
		"   \n" +
		"备注: http://example.com\n"

	records := ParseTextBlocks([]byte(content))
	require.Len(t, records, 3)

	assert.Equal(t, Record{
		FieldProductName:     "泰康全能保",
		FieldAgeLimit:        "18-65岁",
		FieldCoveredDiseases: "恶性肿瘤，心肌梗死",
		FieldSpecialNote:     "高血压患者需核保",
	}, records[0])
	assert.Equal(t, "银发无忧防癌险", records[1].Get(FieldProductName))
	assert.Equal(t, "50-80岁", records[1].Get(FieldAgeLimit))
	assert.Equal(t, "http://example.com", records[2].Get("备注"))
}

func TestParseCSVRecords(t *testing.T) {
	content := "疾病名称,相关科室,常用药物\n" +
		"高血压,心血管内科,\"硝苯地平,氨氯地平\"\n" +
		",,\n" +
		"糖尿病,内分泌科\n"

	records, err := ParseCSVRecords([]byte(content))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "硝苯地平,氨氯地平", records[0].Get(FieldDrugs))
	assert.Equal(t, "内分泌科", records[1].Get(FieldDepartment))
	_, ok := records[1][FieldDrugs]
	assert.False(t, ok)

	_, err = ParseCSVRecords([]byte("\n , \n"))
	assert.Error(t, err)
}

func TestCareRecordFromRecord(t *testing.T) {
	rec := CareRecordFromRecord(Record{
		"name":        " 泰康之家·燕园 ",
		"location":    "北京",
		"services":    "独立生活、协助生活;专业护理",
		"price_range": "10000-30000/月",
	})

	assert.Equal(t, CareRecord{
		Name:       "泰康之家·燕园",
		Location:   "北京",
		Services:   []string{"独立生活", "协助生活", "专业护理"},
		PriceRange: "10000-30000/月",
	}, rec)
}

func TestParseCareJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		out, err := ParseCareJSON([]byte(`[{"name":"泰康之家·燕园","location":"北京","services":["独立生活","协助生活"],"price_range":"10000-30000/月"}]`))
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, []string{"独立生活", "协助生活"}, out[0].Services)
	})

	t.Run("repaired", func(t *testing.T) {
		out, err := ParseCareJSON([]byte(`[{name: "泰康之家·申园", "location": "上海", "services": ["康复训练",],},]`))
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "泰康之家·申园", out[0].Name)
		assert.Equal(t, []string{"康复训练"}, out[0].Services)
	})
}

func TestParseJSONRecords(t *testing.T) {
	out, err := ParseJSONRecords([]byte(`[
		{"疾病名称": "高血压", "常用药物": ["硝苯地平", "氨氯地平"], "相关科室": "心血管内科", "等级": 2},
		{"note": null}
	]`))
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, "硝苯地平，氨氯地平", out[0].Get(FieldDrugs))
	assert.Equal(t, "2", out[0].Get("等级"))
}

func TestLoadBatches(t *testing.T) {
	src := memLoader{
		"raw/" + InsuranceFileName: "产品名称: 泰康全能保\n且覆盖疾病: 高血压\n",
		"raw/" + MedicalFileName:   "疾病名称: 高血压\n相关科室: 心血管内科\n\n疾病名称: 糖尿病\n",
		"raw/" + CareFileName:      `[{"name": "泰康之家·燕园", "location": "北京", "services": []}]`,
		"raw/extra_care.csv":       "name,location,services,price_range\n泰康之家·粤园,广州,专业护理,8000/月\n",
	}

	files := DefaultFiles("raw/", src)
	files = append(files, NewGraphCSVFile(NewGraphFileParams{
		ID:       "extra",
		FilePath: "raw/extra_care.csv",
		Domain:   DomainCare,
		Loader:   src,
	}))

	batches, err := LoadBatches(context.Background(), files, 2)
	require.NoError(t, err)

	assert.Len(t, batches.Insurance, 1)
	assert.Len(t, batches.Medical, 2)
	require.Len(t, batches.Care, 2)
	assert.Equal(t, "泰康之家·燕园", batches.Care[0].Name)
	assert.Equal(t, "泰康之家·粤园", batches.Care[1].Name)
	assert.Equal(t, 5, batches.Len())
}

func TestLoadBatchesErrors(t *testing.T) {
	src := memLoader{}

	_, err := LoadBatches(context.Background(), DefaultFiles("", src), 0)
	assert.Error(t, err)

	_, err = LoadBatches(context.Background(), []GraphFile{{FilePath: "x", Domain: "finance", Loader: src}}, 1)
	assert.ErrorContains(t, err, "unknown domain")

	src["x"] = "a: b"
	_, err = LoadBatches(context.Background(), []GraphFile{{FilePath: "x", Domain: DomainMedical, FileType: "xml", Loader: src}}, 1)
	assert.ErrorContains(t, err, "unsupported file type")

	file := GraphFile{FilePath: "x"}
	_, err = file.GetText(context.Background())
	assert.Error(t, err)
}
