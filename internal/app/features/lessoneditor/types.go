// internal/app/features/lessoneditor/types.go
package lessoneditor

import (
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/blockform"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/drafts"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/locale"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/viewdata"
	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
)

// EditorVM is the view model for the editor page.
type EditorVM struct {
	viewdata.BaseVM
	DraftID     string
	LessonID    string
	CourseID    string
	IsNew       bool
	LessonTitle string
	Description string
	State       string
	Tab         string // "edit" or "preview"
	Saved       bool

	Blocks   []BlockRowVM
	Previews []blockform.Preview
	Kinds    []KindOption
	Dialog   *DialogVM
}

// BlockRowVM is one row of the block list.
type BlockRowVM struct {
	ID        string
	Kind      string
	KindLabel string
	Order     int
	Summary   string
	Open      bool
	First     bool
	Last      bool
	Up        int // destination index for "move up"
	Down      int // destination index for "move down"
}

// KindOption is one entry of the add-block menu.
type KindOption struct {
	Value string
	Label string
}

// DialogVM is the block editor dialog.
type DialogVM struct {
	BlockID   string
	Kind      string
	KindLabel string
	Fields    []FieldVM
	Preview   blockform.Preview
	IsSpacer  bool
	Error     string
}

// FieldVM is one input of the block dialog.
type FieldVM struct {
	Name      string
	Label     string
	Help      string
	Value     string
	Multiline bool
	Required  bool
}

// UnavailableVM is shown when the editor cannot open.
type UnavailableVM struct {
	viewdata.BaseVM
	Message string
}

func kindOptions(lang string) []KindOption {
	kinds := models.AllBlockKinds()
	out := make([]KindOption, len(kinds))
	for i, k := range kinds {
		out[i] = KindOption{Value: string(k), Label: locale.T(lang, "block.kind."+string(k))}
	}
	return out
}

func editorVM(base viewdata.BaseVM, s drafts.Snapshot) EditorVM {
	vm := EditorVM{
		BaseVM:      base,
		DraftID:     s.ID,
		LessonID:    s.LessonID,
		CourseID:    s.CourseID,
		IsNew:       s.IsNew(),
		LessonTitle: s.Title,
		Description: s.Description,
		State:       s.State.String(),
		Tab:         "edit",
		Previews:    blockform.Previews(s.Blocks),
		Kinds:       kindOptions(base.Lang),
	}
	if vm.IsNew {
		vm.Title = base.T("lesson.newTitle")
	} else {
		vm.Title = base.T("lesson.editTitle")
	}

	n := len(s.Blocks)
	vm.Blocks = make([]BlockRowVM, n)
	for i, b := range s.Blocks {
		vm.Blocks[i] = BlockRowVM{
			ID:        b.BlockID(),
			Kind:      string(b.Kind()),
			KindLabel: base.T("block.kind." + string(b.Kind())),
			Order:     b.Position(),
			Summary:   summary(b),
			Open:      b.BlockID() == s.OpenBlockID,
			First:     i == 0,
			Last:      i == n-1,
			Up:        i - 1,
			Down:      i + 1,
		}
	}

	if b, ok := s.OpenBlock(); ok {
		vm.Dialog = dialogVM(base, b, blockform.ValuesOf(b))
	}
	return vm
}

func dialogVM(base viewdata.BaseVM, b models.Block, vals blockform.Values) *DialogVM {
	d := &DialogVM{
		BlockID:   b.BlockID(),
		Kind:      string(b.Kind()),
		KindLabel: base.T("block.kind." + string(b.Kind())),
		Preview:   blockform.NewPreview(blockform.Apply(b, vals)),
		IsSpacer:  b.Kind() == models.BlockSpacer,
	}
	for _, f := range blockform.Fields(b.Kind()) {
		fv := FieldVM{
			Name:      f.Name,
			Label:     base.T(f.LabelKey),
			Multiline: f.Multiline,
			Required:  f.Required,
		}
		if f.HelpKey != "" {
			fv.Help = base.T(f.HelpKey)
		}
		switch f.Name {
		case blockform.FieldContent:
			fv.Value = vals.Content
		case blockform.FieldURL:
			fv.Value = vals.URL
		case blockform.FieldCaption:
			fv.Value = vals.Caption
		}
		d.Fields = append(d.Fields, fv)
	}
	return d
}
