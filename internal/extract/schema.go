package extract

import (
	"encoding/json"
	"fmt"

	"sarabun-assist/internal/models"
)

// Record is the typed result of a field extraction, projected onto one of
// the document schemas. Values are string, []string, or nil for missing.
type Record map[string]interface{}

// GetString returns the field value as a string, empty when missing or not
// a string.
func (r Record) GetString(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Schema fixes the recognised key set for a document type, with the Thai
// label shown for each key in the extraction prompt.
type Schema struct {
	Type   models.DocumentType
	Keys   []string
	Labels map[string]string
}

var memorandumSchema = Schema{
	Type: models.Memorandum,
	Keys: []string{
		"department", "document_number", "date", "subject", "recipient",
		"reference", "attachments", "body_main",
		"proposer_rank_name", "proposer_position", "proposer_title_suffix",
		"approver_rank_name", "approver_position", "approver_command",
		"coordinator_info", "main_intent", "requested_action_details",
	},
	Labels: map[string]string{
		"department":               "ส่วนราชการ",
		"document_number":          "ที่ (เลขหนังสือ)",
		"date":                     "วันที่",
		"subject":                  "เรื่อง",
		"recipient":                "เรียน/เสนอ",
		"reference":                "อ้างถึง",
		"attachments":              "สิ่งที่ส่งมาด้วย",
		"body_main":                "เนื้อความหลัก",
		"proposer_rank_name":       "ยศ ชื่อผู้เสนอ",
		"proposer_position":        "ตำแหน่งผู้เสนอ",
		"proposer_title_suffix":    "ส่วนต่อท้ายตำแหน่งผู้เสนอ (เช่น ปฏิบัติหน้าที่, ทำการแทน)",
		"approver_rank_name":       "ยศ ชื่อผู้อนุมัติ",
		"approver_position":        "ตำแหน่งผู้อนุมัติ",
		"approver_command":         "ข้อความคำสั่งของผู้อนุมัติ (เช่น อนุมัติ, ทราบ, เห็นชอบ)",
		"coordinator_info":         "ข้อมูลผู้ประสานงาน (ยศ ชื่อ ตำแหน่ง และเบอร์โทร)",
		"main_intent":              "เจตนาหลักของหนังสือ (สรุป)",
		"requested_action_details": "รายละเอียดการดำเนินการที่ร้องขอ (สรุป)",
	},
}

var jointNewsPaperSchema = Schema{
	Type: models.JointNewsPaper,
	Keys: []string{
		"urgency", "confidentiality", "datetime_group", "page_info",
		"originator_ref", "from_department", "to_recipient", "info_recipient",
		"body_main", "qr_email", "responsible_unit", "phone",
		"reporter_rank_name_position", "approver_rank_name_position",
		"coordinator_info", "main_intent", "requested_action_details",
	},
	Labels: map[string]string{
		"urgency":                     "ลำดับความเร่งด่วน",
		"confidentiality":             "ชั้นความลับ",
		"datetime_group":              "หมู่-วัน-เวลา",
		"page_info":                   "หน้าที่",
		"originator_ref":              "ที่ของผู้ให้ข่าว",
		"from_department":             "จาก (หน่วยงานผู้ส่ง)",
		"to_recipient":                "ถึง (ผู้รับปฏิบัติ)",
		"info_recipient":              "ผู้รับทราบ",
		"body_main":                   "เนื้อหาข่าว",
		"qr_email":                    "QR Code/Email",
		"responsible_unit":            "หน่วย (ผู้รับผิดชอบ)",
		"phone":                       "โทรศัพท์",
		"reporter_rank_name_position": "ยศ ชื่อ ตำแหน่งผู้เขียนข่าว",
		"approver_rank_name_position": "ยศ ชื่อ ตำแหน่งนายทหารอนุมัติข่าว",
		"coordinator_info":            "ข้อมูลผู้ประสานงาน (ยศ ชื่อ ตำแหน่ง และเบอร์โทร)",
		"main_intent":                 "เจตนาหลักของข่าว",
		"requested_action_details":    "รายละเอียดการดำเนินการที่ร้องขอจากผู้รับปฏิบัติ",
	},
}

// SchemaFor returns the extraction schema for the document type.
func SchemaFor(docType models.DocumentType) (Schema, error) {
	switch docType {
	case models.Memorandum:
		return memorandumSchema, nil
	case models.JointNewsPaper:
		return jointNewsPaperSchema, nil
	}
	return Schema{}, fmt.Errorf("document type '%s' is not supported for extraction", docType)
}

// Project maps raw model output onto the schema: every schema key is
// present (nil when missing), unknown keys are dropped, list values are
// normalised to []string and other scalars stringified.
func Project(raw map[string]interface{}, schema Schema) Record {
	record := make(Record, len(schema.Keys))
	for _, key := range schema.Keys {
		v, ok := raw[key]
		if !ok || v == nil {
			record[key] = nil
			continue
		}
		record[key] = normaliseValue(v)
	}
	return record
}

func normaliseValue(v interface{}) interface{} {
	switch t := v.(type) {
	case string:
		return t
	case []interface{}:
		items := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				items = append(items, s)
			} else {
				items = append(items, fmt.Sprint(item))
			}
		}
		return items
	case []string:
		return t
	case float64, bool, int:
		return fmt.Sprint(t)
	default:
		// Nested objects keep their JSON form.
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
