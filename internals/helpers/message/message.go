// file: internals/helpers/message/message.go
package message

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"lms_backend/internals/constants"
)

// Resolver mengubah message key (+ argumen) jadi teks untuk user.
type Resolver interface {
	Resolve(key string, args ...any) string
}

var supported = []language.Tag{
	language.Indonesian, // default
	language.English,
	language.Japanese,
}

var matcher = language.NewMatcher(supported)

var templates = map[language.Tag]map[string]string{
	language.Indonesian: {
		constants.MsgAuthorization:              "Anda tidak memiliki hak akses untuk fitur ini.",
		constants.MsgAttendanceNotWorkDay:       "Hari ini bukan hari pelatihan.",
		constants.MsgAttendancePunchExists:      "Kehadiran hari ini sudah diisi. Silakan edit langsung.",
		constants.MsgAttendancePunchInEmpty:     "Belum ada jam masuk, jam pulang tidak bisa diisi.",
		constants.MsgAttendanceTimeRange:        "Jam pulang harus setelah jam masuk.",
		constants.MsgAttendanceBlankTimeError:   "Waktu istirahat tidak boleh melebihi waktu pelatihan.",
		constants.MsgAttendanceUpdateNotice:     "Data kehadiran berhasil disimpan.",
		constants.MsgAttendanceValidationFailed: "Validasi kehadiran gagal.",
		constants.MsgMaxLength:                  "%s harus kurang dari %s karakter.",
		constants.MsgInputInvalid:               "%s tidak valid.",
		constants.LabelNote:                     "Catatan",
		constants.LabelStartTime:                "Jam masuk",
		constants.LabelEndTime:                  "Jam pulang",
	},
	language.English: {
		constants.MsgAuthorization:              "You are not authorized to use this feature.",
		constants.MsgAttendanceNotWorkDay:       "Today is not a training day.",
		constants.MsgAttendancePunchExists:      "Today's attendance is already recorded. Please edit it directly.",
		constants.MsgAttendancePunchInEmpty:     "There is no punch-in yet, so punch-out cannot be recorded.",
		constants.MsgAttendanceTimeRange:        "The end time must be after the start time.",
		constants.MsgAttendanceBlankTimeError:   "Break time cannot exceed the training time.",
		constants.MsgAttendanceUpdateNotice:     "Attendance saved.",
		constants.MsgAttendanceValidationFailed: "Attendance validation failed.",
		constants.MsgMaxLength:                  "%s must be shorter than %s characters.",
		constants.MsgInputInvalid:               "%s is invalid.",
		constants.LabelNote:                     "Note",
		constants.LabelStartTime:                "Start time",
		constants.LabelEndTime:                  "End time",
	},
	language.Japanese: {
		constants.MsgAuthorization:              "この機能を利用する権限がありません。",
		constants.MsgAttendanceNotWorkDay:       "本日は研修日ではありません。",
		constants.MsgAttendancePunchExists:      "本日の勤怠情報は既に入力されています。直接編集してください。",
		constants.MsgAttendancePunchInEmpty:     "出勤情報がないため退勤情報を入力出来ません。",
		constants.MsgAttendanceTimeRange:        "退勤時刻は出勤時刻より後でなければいけません。",
		constants.MsgAttendanceBlankTimeError:   "中抜け時間が研修時間を超えています。",
		constants.MsgAttendanceUpdateNotice:     "勤怠情報を更新しました。",
		constants.MsgAttendanceValidationFailed: "勤怠情報の入力に誤りがあります。",
		constants.MsgMaxLength:                  "%sは%s文字未満で入力してください。",
		constants.MsgInputInvalid:               "%sが正しくありません。",
		constants.LabelNote:                     "備考",
		constants.LabelStartTime:                "出勤時間",
		constants.LabelEndTime:                  "退勤時間",
	},
}

var cat = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.Indonesian))
	for tag, msgs := range templates {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("message: invalid template %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

// Printer = Resolver untuk satu bahasa.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

func New(tag language.Tag) *Printer {
	_, idx, _ := matcher.Match(tag)
	t := supported[idx]
	return &Printer{tag: t, p: message.NewPrinter(t, message.Catalog(cat))}
}

// FromAcceptLanguage memilih bahasa dari header "Accept-Language". Kosong/tidak dikenal → Indonesia.
func FromAcceptLanguage(header string) *Printer {
	header = strings.TrimSpace(header)
	if header == "" {
		return New(language.Indonesian)
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return New(language.Indonesian)
	}
	_, idx, _ := matcher.Match(tags...)
	return New(supported[idx])
}

func (p *Printer) Tag() language.Tag { return p.tag }

func (p *Printer) Resolve(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}
