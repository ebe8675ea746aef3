package domain

import "strings"

// FileCode is a single letter working copy status code.
// Git codes use the porcelain letters, ' ' meaning unmodified.
type FileCode byte

const (
	CodeUnmodified FileCode = ' '
	CodeAdded      FileCode = 'A'
	CodeClean      FileCode = 'C' // hg only; git uses C for copied
	CodeCopied     FileCode = 'C'
	CodeDeleted    FileCode = 'D'
	CodeIgnored    FileCode = 'I'
	CodeMissing    FileCode = '!'
	CodeModified   FileCode = 'M'
	CodeRemoved    FileCode = 'R' // hg only; git uses R for renamed
	CodeRenamed    FileCode = 'R'
	CodeUnmerged   FileCode = 'U'
	CodeUntracked  FileCode = '?'
)

// GitFileState is the status of one path in a git working copy
type GitFileState struct {
	Staging  FileCode // Index compared to HEAD
	Worktree FileCode // Working tree compared to index
}

// AbbreviatedState renders the two codes as "XY" using '.' for unmodified.
// Clean tracked files return "" and untracked files "??".
func (s GitFileState) AbbreviatedState() string {
	if s.Staging == CodeUntracked || s.Worktree == CodeUntracked {
		return "??"
	}
	if s.Staging == CodeUnmodified && s.Worktree == CodeUnmodified {
		return ""
	}
	return string([]byte{dotIfUnmodified(s.Staging), dotIfUnmodified(s.Worktree)})
}

// IsNew reports untracked or newly staged files
func (s GitFileState) IsNew() bool {
	return s.Staging == CodeAdded || s.Staging == CodeUntracked || s.Worktree == CodeUntracked
}

// inHead reports whether HEAD has a version of the file
func (s GitFileState) inHead() bool {
	return s.Staging != CodeAdded && s.Staging != CodeUntracked
}

// CanDiffHeadVsWorking reports whether HEAD and the working file differ
func (s GitFileState) CanDiffHeadVsWorking() bool {
	return s.inHead() && (s.Staging == CodeModified || s.Worktree == CodeModified)
}

// CanDiffStagedVsWorking reports whether the index and the working file differ
func (s GitFileState) CanDiffStagedVsWorking() bool {
	return s.Worktree == CodeModified
}

// CanDiffHeadVsStaged reports whether HEAD and the index differ
func (s GitFileState) CanDiffHeadVsStaged() bool {
	return s.inHead() && s.Staging == CodeModified
}

func dotIfUnmodified(c FileCode) byte {
	if c == CodeUnmodified || c == 0 {
		return '.'
	}
	return byte(c)
}

// HgFileState is the status of one path in a Mercurial working copy
type HgFileState struct {
	Code FileCode
}

// AbbreviatedState is the hg status letter, "" for clean files
func (s HgFileState) AbbreviatedState() string {
	if s.Code == CodeClean || s.Code == CodeUnmodified || s.Code == 0 {
		return ""
	}
	return string(rune(s.Code))
}

// IsNew reports added or untracked files
func (s HgFileState) IsNew() bool {
	return s.Code == CodeAdded || s.Code == CodeUntracked
}

// SvnFileState is the status of one path in a Subversion working copy
type SvnFileState struct {
	Item  FileCode // First status column
	Props FileCode // Second status column
}

// AbbreviatedState joins the item and property columns, "" when both are normal
func (s SvnFileState) AbbreviatedState() string {
	return strings.TrimRight(string([]byte{byte(orSpace(s.Item)), byte(orSpace(s.Props))}), " ")
}

// IsNew reports added or unversioned paths
func (s SvnFileState) IsNew() bool {
	return s.Item == CodeAdded || s.Item == CodeUntracked
}

func orSpace(c FileCode) FileCode {
	if c == 0 {
		return CodeUnmodified
	}
	return c
}
