package i18n

// Message keys for shootout labels shown by rendering surfaces.
const (
	LabelPenaltiesKey       = "penalty.label.penalties"
	LabelHomeKey            = "penalty.label.home"
	LabelAwayKey            = "penalty.label.away"
	LabelGoalKey            = "penalty.label.goal"
	LabelFailKey            = "penalty.label.fail"
	LabelPendingKey         = "penalty.label.pending"
	LabelStageInitialKey    = "penalty.label.stage_initial"
	LabelStageSuddenKey     = "penalty.label.stage_sudden"
	LabelStageDoneKey       = "penalty.label.stage_done"
	LabelNextKey            = "penalty.label.next"
	LabelWinnerKey          = "penalty.label.winner"
	LabelNoneKey            = "penalty.label.none"
	LabelUndoKey            = "penalty.label.undo"
	LabelRedoKey            = "penalty.label.redo"
	LabelResetKey           = "penalty.label.reset"
	LabelSaveKey            = "penalty.label.save"
	LabelEditAfterFinishKey = "penalty.label.edit_after_finish"
)
