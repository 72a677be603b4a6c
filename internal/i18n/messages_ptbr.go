package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, LabelPenaltiesKey, "Pênaltis")
	message.SetString(lang, LabelHomeKey, "Casa")
	message.SetString(lang, LabelAwayKey, "Visitante")
	message.SetString(lang, LabelGoalKey, "Gol")
	message.SetString(lang, LabelFailKey, "Perdeu")
	message.SetString(lang, LabelPendingKey, "Pendente")
	message.SetString(lang, LabelStageInitialKey, "Inicial")
	message.SetString(lang, LabelStageSuddenKey, "Morte súbita")
	message.SetString(lang, LabelStageDoneKey, "Encerrado")
	message.SetString(lang, LabelNextKey, "Próxima")
	message.SetString(lang, LabelWinnerKey, "Vencedor")
	message.SetString(lang, LabelNoneKey, "Nenhum")
	message.SetString(lang, LabelUndoKey, "Desfazer")
	message.SetString(lang, LabelRedoKey, "Refazer")
	message.SetString(lang, LabelResetKey, "Reiniciar")
	message.SetString(lang, LabelSaveKey, "Salvar")
	message.SetString(lang, LabelEditAfterFinishKey, "Permitir edições após o término")

	errorMessages[lang.String()] = map[string]string{
		"SHOOTOUT_INVALID_CONFIGURATION": "Configuração de pênaltis inválida",
		"SHOOTOUT_INDEX_OUT_OF_RANGE":    "Cobrança {{.Index}} fora do intervalo para {{.Team}}",
		"SHOOTOUT_INVALID_OPERATION":     "A disputa de pênaltis já foi decidida",
		"SHOOTOUT_INVALID_TEAM":          "Time desconhecido {{.Value}}",
		"SHOOTOUT_INVALID_OUTCOME":       "Resultado de cobrança desconhecido {{.Value}}",
		"SHOOTOUT_INVALID_STAGE":         "Fase desconhecida {{.Value}}",
		"NOT_FOUND":                      "Nenhum registro de pênaltis encontrado{{if .Field}} para {{.Field}}{{end}}",
		"STORAGE_INVALID_RECORD":         "Não foi possível ler o documento da partida",
		"STORAGE_INVALID_FIELD":          "Campo desconhecido {{.Field}}",
		"STORAGE_LOCK_TIMEOUT":           "O documento da partida está bloqueado por outra ferramenta",
		"STORAGE_NOT_INITIALIZED":        "Armazenamento não configurado",
		"UNKNOWN":                        "Algo deu errado",
	}
}
