package template

import "go-crowdfund/internal/features/field"

// SystemTemplates returns the built-in template bundles for the
// crowdfunding back office. Seeding is idempotent; editing these after a
// deployment only affects databases that have not seeded them yet.
func SystemTemplates() []FieldTemplate {
	return []FieldTemplate{
		{
			Module:        "properties",
			NameEn:        "Property Listing Details",
			NameAr:        "تفاصيل العقار",
			DescriptionEn: "Extra listing fields shown on the property admin form",
			IsSystem:      true,
			Fields: []TemplateField{
				{
					FieldKey: "manager_name", LabelEn: "Property Manager", LabelAr: "مدير العقار",
					FieldType: field.FieldTypeText, IsRequired: true,
					ShowInAdmin: true, ShowInUserForm: false, DisplayOrder: 1,
				},
				{
					FieldKey: "manager_phone", LabelEn: "Manager Phone", LabelAr: "هاتف المدير",
					FieldType: field.FieldTypePhone,
					ShowInAdmin: true, ShowInUserForm: false, DisplayOrder: 2,
					Dependencies:    `{"showIf":{"fieldKey":"manager_name","operator":"notEmpty"}}`,
					ValidationRules: `[{"type":"phone"}]`,
				},
				{
					FieldKey: "furnishing", LabelEn: "Furnishing", LabelAr: "التأثيث",
					FieldType: field.FieldTypeDropdown,
					Config:    `{"options":[{"value":"furnished","label":"Furnished"},{"value":"semi_furnished","label":"Semi-furnished"},{"value":"unfurnished","label":"Unfurnished"}]}`,
					ShowInAdmin: true, ShowInUserForm: true, DisplayOrder: 3,
				},
				{
					FieldKey: "handover_date", LabelEn: "Handover Date", LabelAr: "تاريخ التسليم",
					FieldType: field.FieldTypeDate,
					ShowInAdmin: true, ShowInUserForm: true, DisplayOrder: 4,
				},
				{
					FieldKey: "brochure", LabelEn: "Brochure", LabelAr: "الكتيب",
					FieldType: field.FieldTypeFile,
					ShowInAdmin: true, ShowInUserForm: false, DisplayOrder: 5,
				},
			},
		},
		{
			Module:        "users",
			NameEn:        "Investor KYC",
			NameAr:        "التحقق من المستثمر",
			DescriptionEn: "Know-your-customer fields collected during investor onboarding",
			IsSystem:      true,
			Fields: []TemplateField{
				{
					FieldKey: "nationality", LabelEn: "Nationality", LabelAr: "الجنسية",
					FieldType: field.FieldTypeCountry, IsRequired: true,
					ShowInAdmin: true, ShowInUserForm: true, DisplayOrder: 1,
				},
				{
					FieldKey: "id_number", LabelEn: "National ID / Passport", LabelAr: "رقم الهوية / جواز السفر",
					FieldType: field.FieldTypeText, IsRequired: true,
					ShowInAdmin: true, ShowInUserForm: true, DisplayOrder: 2,
					ValidationRules: `[{"type":"minLength","value":6},{"type":"maxLength","value":20}]`,
				},
				{
					FieldKey: "id_document", LabelEn: "ID Document", LabelAr: "وثيقة الهوية",
					FieldType: field.FieldTypeFile, IsRequired: true,
					ShowInAdmin: true, ShowInUserForm: true, DisplayOrder: 3,
				},
				{
					FieldKey: "employment_status", LabelEn: "Employment Status", LabelAr: "الحالة الوظيفية",
					FieldType: field.FieldTypeDropdown,
					Config:    `{"options":[{"value":"employed","label":"Employed"},{"value":"self_employed","label":"Self-employed"},{"value":"retired","label":"Retired"},{"value":"other","label":"Other"}]}`,
					ShowInAdmin: true, ShowInUserForm: true, DisplayOrder: 4,
				},
				{
					FieldKey: "employer_name", LabelEn: "Employer", LabelAr: "جهة العمل",
					FieldType: field.FieldTypeText,
					ShowInAdmin: true, ShowInUserForm: true, DisplayOrder: 5,
					Dependencies: `{"showIf":{"fieldKey":"employment_status","operator":"in","value":["employed","self_employed"]}}`,
				},
			},
		},
		{
			Module:        "leads",
			NameEn:        "Lead Qualification",
			NameAr:        "تأهيل العميل المحتمل",
			DescriptionEn: "Qualification fields for the sales pipeline",
			IsSystem:      true,
			Fields: []TemplateField{
				{
					FieldKey: "budget", LabelEn: "Budget (AED)", LabelAr: "الميزانية (درهم)",
					FieldType: field.FieldTypeNumber,
					ShowInAdmin: true, ShowInUserForm: false, DisplayOrder: 1,
					ValidationRules: `[{"type":"minValue","value":0}]`,
				},
				{
					FieldKey: "source", LabelEn: "Lead Source", LabelAr: "مصدر العميل",
					FieldType: field.FieldTypeDropdown,
					Config:    `{"options":[{"value":"website","label":"Website"},{"value":"referral","label":"Referral"},{"value":"campaign","label":"Campaign"}]}`,
					ShowInAdmin: true, ShowInUserForm: false, DisplayOrder: 2,
				},
				{
					FieldKey: "referrer_email", LabelEn: "Referrer Email", LabelAr: "بريد المُحيل",
					FieldType: field.FieldTypeEmail,
					ShowInAdmin: true, ShowInUserForm: false, DisplayOrder: 3,
					Dependencies:    `{"showIf":{"fieldKey":"source","operator":"equals","value":"referral"}}`,
					ValidationRules: `[{"type":"email"}]`,
				},
			},
		},
		{
			Module:        "invoices",
			NameEn:        "Invoice Extras",
			NameAr:        "حقول الفاتورة الإضافية",
			DescriptionEn: "Additional fields attached to generated invoices",
			IsSystem:      true,
			Fields: []TemplateField{
				{
					FieldKey: "purchase_order", LabelEn: "Purchase Order No.", LabelAr: "رقم أمر الشراء",
					FieldType: field.FieldTypeText,
					ShowInAdmin: true, ShowInUserForm: false, DisplayOrder: 1,
				},
				{
					FieldKey: "tax_registered", LabelEn: "Tax Registered", LabelAr: "مسجل ضريبياً",
					FieldType: field.FieldTypeBoolean,
					ShowInAdmin: true, ShowInUserForm: true, DisplayOrder: 2,
				},
				{
					FieldKey: "tax_number", LabelEn: "Tax Registration No.", LabelAr: "الرقم الضريبي",
					FieldType: field.FieldTypeText,
					ShowInAdmin: true, ShowInUserForm: true, DisplayOrder: 3,
					Dependencies:    `{"showIf":{"fieldKey":"tax_registered","operator":"equals","value":"true"}}`,
					ValidationRules: `[{"type":"regex","value":"^[0-9]{15}$","errorMessageEn":"Tax registration number must be 15 digits","errorMessageAr":"الرقم الضريبي يجب أن يتكون من 15 رقماً"}]`,
				},
			},
		},
	}
}
