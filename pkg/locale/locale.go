// Package locale localizes the built-in dialog reply labels (OK, Cancel,
// Yes, No) against a fixed translation table. Matching is a stateless pure
// function over an explicit, ordered locale-preference list so the engine
// stays testable without touching the real OS locale; Preferences derives
// such a list from the environment for hosts that want the system default.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Phrase identifies one of the built-in reply labels.
type Phrase int

const (
	PhraseOK Phrase = iota
	PhraseCancel
	PhraseYes
	PhraseNo
)

// The supported locales, in table order. The first entry is the fallback
// used when no preference matches.
var tags = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("zh-CN"),
	language.MustParse("zh-TW"),
	language.MustParse("es"),
	language.MustParse("fr"),
	language.MustParse("it"),
	language.MustParse("ja"),
	language.MustParse("pt-BR"),
	language.MustParse("ru"),
	language.MustParse("tr"),
}

var matcher = language.NewMatcher(tags)

// override, when non-nil, replaces the environment-derived preference
// list. Set through SetPreferences.
var override []string

// translations holds one label per supported locale, indexed in tag order.
var translations = map[Phrase][]string{
	PhraseOK:     {"OK", "确定", "確定", "OK", "D'accord", "OK", "はい", "OK", "Хорошо", "Tamam"},
	PhraseCancel: {"Cancel", "取消", "取消", "Cancelar", "Annuler", "Annulla", "キャンセル", "Cancelar", "Отмена", "İptal"},
	PhraseYes:    {"Yes", "是", "是", "Sí", "Oui", "Sì", "はい", "Sim", "Да", "Evet"},
	PhraseNo:     {"No", "否", "否", "No", "Non", "No", "いいえ", "Não", "Нет", "Hayır"},
}

// Text returns the label for p under the best-matching locale in prefs.
// Preferences are tried in order; unparseable entries are skipped. When
// nothing matches, the first table entry (English) is returned.
func Text(p Phrase, prefs []string) string {
	labels, ok := translations[p]
	if !ok {
		return ""
	}

	var wanted []language.Tag
	for _, pref := range prefs {
		tag, err := language.Parse(pref)
		if err != nil {
			continue
		}
		wanted = append(wanted, tag)
	}

	idx := 0
	if len(wanted) > 0 {
		_, i, conf := matcher.Match(wanted...)
		if conf != language.No {
			idx = i
		}
	}
	return labels[idx]
}

// SetPreferences installs a process-wide preference list that Preferences
// returns instead of consulting the environment. Hosts use it to honor a
// configured locale override. Passing nil (or an empty list) reverts to
// environment lookup. Call it during startup, before dialogs are built;
// it is not synchronized against concurrent Preferences calls.
func SetPreferences(prefs []string) {
	if len(prefs) == 0 {
		override = nil
		return
	}
	override = append([]string(nil), prefs...)
}

// Preferences returns the list installed with SetPreferences when one is
// set. Otherwise it derives an ordered locale-preference list from the
// environment: LANGUAGE (a colon-separated priority list) first, then
// LC_ALL, LC_MESSAGES and LANG. Codeset suffixes such as ".UTF-8" are
// stripped and underscores normalized to hyphens.
func Preferences() []string {
	if override != nil {
		return append([]string(nil), override...)
	}

	var raw []string
	if v := os.Getenv("LANGUAGE"); v != "" {
		raw = append(raw, strings.Split(v, ":")...)
	}
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			raw = append(raw, v)
		}
	}

	prefs := make([]string, 0, len(raw))
	for _, v := range raw {
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		v = strings.ReplaceAll(v, "_", "-")
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		prefs = append(prefs, v)
	}
	return prefs
}
