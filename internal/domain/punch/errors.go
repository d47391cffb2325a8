package punch

import "errors"

var (
	ErrPunchNotFound         = errors.New("punch not found")
	ErrPunchDeleted          = errors.New("punch has already been deleted")
	ErrJustificationRequired = errors.New("a justification is required to change a punch")
	ErrImportNotFound        = errors.New("import batch not found")
)
