package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, LabelPenaltiesKey, "Penalties")
	message.SetString(lang, LabelHomeKey, "Home")
	message.SetString(lang, LabelAwayKey, "Away")
	message.SetString(lang, LabelGoalKey, "Goal")
	message.SetString(lang, LabelFailKey, "Miss")
	message.SetString(lang, LabelPendingKey, "Pending")
	message.SetString(lang, LabelStageInitialKey, "Initial")
	message.SetString(lang, LabelStageSuddenKey, "Sudden death")
	message.SetString(lang, LabelStageDoneKey, "Done")
	message.SetString(lang, LabelNextKey, "Next")
	message.SetString(lang, LabelWinnerKey, "Winner")
	message.SetString(lang, LabelNoneKey, "None")
	message.SetString(lang, LabelUndoKey, "Undo")
	message.SetString(lang, LabelRedoKey, "Redo")
	message.SetString(lang, LabelResetKey, "Reset")
	message.SetString(lang, LabelSaveKey, "Save")
	message.SetString(lang, LabelEditAfterFinishKey, "Allow edits after finish")

	errorMessages[lang.String()] = map[string]string{
		"SHOOTOUT_INVALID_CONFIGURATION": "Invalid shootout configuration",
		"SHOOTOUT_INDEX_OUT_OF_RANGE":    "Kick {{.Index}} is out of range for {{.Team}}",
		"SHOOTOUT_INVALID_OPERATION":     "The shootout is already decided",
		"SHOOTOUT_INVALID_TEAM":          "Unknown team {{.Value}}",
		"SHOOTOUT_INVALID_OUTCOME":       "Unknown kick outcome {{.Value}}",
		"SHOOTOUT_INVALID_STAGE":         "Unknown stage {{.Value}}",
		"NOT_FOUND":                      "No penalties record found{{if .Field}} for {{.Field}}{{end}}",
		"STORAGE_INVALID_RECORD":         "The match document could not be read",
		"STORAGE_INVALID_FIELD":          "Unknown field {{.Field}}",
		"STORAGE_LOCK_TIMEOUT":           "The match document is locked by another tool",
		"STORAGE_NOT_INITIALIZED":        "Storage is not configured",
		"UNKNOWN":                        "Something went wrong",
	}
}
