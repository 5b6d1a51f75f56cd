package ledger

// Field is a canonical column identity. Input files carry these under many
// header spellings, Mongolian and English; the alias catalogue below maps
// each Field to the spellings seen in the wild. Order matters: earlier
// aliases win ties during resolution.
type Field string

const (
	FieldAccount            Field = "Account"
	FieldAccountName        Field = "Account Name"
	FieldPostingDate        Field = "Posting Date"
	FieldDocumentNo         Field = "Document No"
	FieldCounterAccount     Field = "Counter Account"
	FieldCounterAccountName Field = "Counter Account Name"
	FieldVoucherNo          Field = "Voucher No"
	FieldCurrency           Field = "Currency"
	FieldExchangeRate       Field = "Exchange Rate"
	FieldForeignAmount      Field = "Foreign Amount"
	FieldDebit              Field = "Debit"
	FieldCredit             Field = "Credit"
	FieldTransaction        Field = "Transaction"
	FieldDescription        Field = "Description"
	FieldAbsolute           Field = "ABS"
	FieldUser               Field = "User"
	FieldCreationDate       Field = "Creation Date"
	FieldDay                Field = "Day"
	FieldOpeningBalance     Field = "Opening Balance"
	FieldClosingBalance     Field = "Closing Balance"
)

// aliases holds the accepted header synonyms per canonical field.
// The lists are static and immutable for the life of the process.
var aliases = map[Field][]string{
	FieldAccount:            {"Данс", "GL Account", "Account No", "Account Number", "Данс код"},
	FieldAccountName:        {"Дансны нэр", "GL Account Name", "Name"},
	FieldPostingDate:        {"Огноо", "Posted Date", "Date", "GL Date", "Үүсгэсэн огноо"},
	FieldDocumentNo:         {"Гүйлгээний дугаар", "Voucher No", "Entry No", "Trans No"},
	FieldCounterAccount:     {"Харьцсан данс", "Offset Account"},
	FieldCounterAccountName: {"Харьцсан дансны нэр", "Offset Account Name"},
	FieldVoucherNo:          {"Баримтын дугаар", "Баримт дугаар", "Invoice No", "Bill No", "Receipt No"},
	FieldCurrency:           {"Валют", "Currency Code"},
	FieldExchangeRate:       {"Ханш", "Rate"},
	FieldForeignAmount:      {"Валютын дүн", "FCY Amount", "Amount (FCY)"},
	FieldDebit:              {"Дебет дүн", "Дебет", "Debit Amount", "Debit (MNT)"},
	FieldCredit:             {"Кредит дүн", "Кредит", "Credit Amount", "Credit (MNT)"},
	FieldTransaction:        {"Amount", "Transaction Amount", "Гүйлгээний дүн", "Currency amount", "Дүн"},
	FieldDescription:        {"Гүйлгээний утга", "Memo", "Narration"},
	FieldAbsolute:           {"Absolute"},
	FieldUser:               {"Бүртгэсэн хэрэглэгч", "Posted By", "Created By"},
	FieldCreationDate:       {"Үүсгэсэн огноо", "Created Date"},
	FieldDay:                {"Өдөр"},
	FieldOpeningBalance:     {"Opening", "Beginning Balance", "Эхний үлдэгдэл", "2023"},
	FieldClosingBalance:     {"Ending Balance", "Closing", "Эцсийн үлдэгдэл", "2024"},
}

// Aliases returns the synonym list for a field, excluding the canonical
// name itself. The returned slice must not be modified.
func Aliases(f Field) []string {
	return aliases[f]
}
