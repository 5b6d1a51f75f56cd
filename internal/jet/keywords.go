package jet

import (
	"fmt"
	"strings"

	"jetaudit/internal/ledger"
)

// KeywordGroup is one search term with its localized synonyms. Matching is
// case-insensitive substring over the entry description.
type KeywordGroup struct {
	Term     string
	Synonyms []string
}

// keywordGroups is the fixed bilingual audit keyword list.
var keywordGroups = []KeywordGroup{
	{"Terminate", []string{"Дуусгах", "зогсоох", "цуцлах"}},
	{"Adjust", []string{"Тохируулга"}},
	{"Error", []string{"Алдаа"}},
	{"Wrong", []string{"Буруу"}},
	{"Revise", []string{"Засах", "дахин хянах", "өөрчлөх"}},
	{"Буцаалт", []string{"Буцаалт"}},
	{"Delete", []string{"Устгах", "арилгах"}},
}

// KeywordSearch flags entries whose description contains any keyword or
// synonym, producing a per-keyword summary plus a detail listing of every
// matched entry. An entry matching several keywords appears once per
// keyword in the detail table.
func KeywordSearch(gl *ledger.Ledger) (ResultTable, ResultTable, error) {
	summary := ResultTable{
		Name:    TableKeywordSummary,
		Columns: []string{"Keyword", "Keyword (Mongolian)", "Number of Entries"},
	}
	detail := ResultTable{
		Name:    TableKeywordDetail,
		Columns: []string{"Account", "Description", "Per Audit"},
	}
	if gl.Empty() {
		return summary, detail, nil
	}
	if !gl.Has(ledger.FieldDescription) {
		return summary, detail, fmt.Errorf("missing column %q", ledger.FieldDescription)
	}

	total := 0
	for _, kg := range keywordGroups {
		terms := make([]string, 0, len(kg.Synonyms)+1)
		terms = append(terms, strings.ToLower(kg.Term))
		for _, s := range kg.Synonyms {
			terms = append(terms, strings.ToLower(s))
		}

		matched := 0
		for _, e := range gl.Entries {
			desc := strings.ToLower(e.Description)
			for _, term := range terms {
				if strings.Contains(desc, term) {
					matched++
					detail.Rows = append(detail.Rows, []any{e.Account, e.Description, kg.Term})
					break
				}
			}
		}
		summary.Rows = append(summary.Rows, []any{
			kg.Term, strings.Join(kg.Synonyms, ", "), matched,
		})
		total += matched
	}
	summary.Rows = append(summary.Rows, []any{"Total", "", total})
	return summary, detail, nil
}
