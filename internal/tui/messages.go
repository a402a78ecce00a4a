package tui

import (
	"github.com/Baconcat1912/encryptify/internal/service"
	"github.com/Baconcat1912/encryptify/models"
)

type fileDoneMsg struct {
	entry models.HistoryEntry
	err   error
}

type folderDoneMsg struct {
	report *service.FolderReport
	err    error
}

type reverseDoneMsg struct {
	entry models.HistoryEntry
	err   error
}

type historyClearedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
