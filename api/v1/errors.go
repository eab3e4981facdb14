package v1

import "net/http"

var (
	// common errors
	ErrSuccess             = newError(0, "ok")
	ErrBadRequest          = newError(400, "bad request")
	ErrUnauthorized        = newError(401, "unauthorized")
	ErrNotFound            = newError(404, "not found")
	ErrInternalServerError = newError(500, "internal server error")

	// more biz errors
	ErrAccountDisabled = newStatusError(1003, http.StatusUnauthorized, "The account is disabled.")
	ErrWrongPassword   = newStatusError(1004, http.StatusBadRequest, "The old password is incorrect.")

	// template errors
	ErrTemplateNotFound        = newStatusError(2001, http.StatusNotFound, "template not found")
	ErrTemplateNameInUse       = newStatusError(2002, http.StatusConflict, "template name is already in use")
	ErrInvalidStatusTransition = newStatusError(2003, http.StatusBadRequest, "invalid status transition")
	ErrPrimaryRegionNotInList  = newStatusError(2004, http.StatusBadRequest, "primary region must be one of the template regions")
	ErrStatusChangeNotAllowed  = newStatusError(2005, http.StatusBadRequest, "status can only be changed through the status endpoint")

	// template application errors
	ErrApplicationAlreadyAttached = newStatusError(2101, http.StatusConflict, "application is already attached to the template")
	ErrApplicationNotAttached     = newStatusError(2102, http.StatusNotFound, "application is not attached to the template")
	ErrInstallOrderInUse          = newStatusError(2103, http.StatusConflict, "install order is already used by another application")
	ErrInvalidReorder             = newStatusError(2104, http.StatusBadRequest, "reorder list must contain every attached application exactly once")

	// master data errors
	ErrBusinessUnitNotFound = newStatusError(2201, http.StatusNotFound, "business unit not found")
	ErrContactNotFound      = newStatusError(2202, http.StatusNotFound, "contact not found")
	ErrApplicationNotFound  = newStatusError(2203, http.StatusNotFound, "application not found")
	ErrBaseImageNotFound    = newStatusError(2204, http.StatusNotFound, "base image not found")
	ErrBusinessUnitCodeUsed = newStatusError(2211, http.StatusConflict, "business unit code is already in use")
	ErrContactEmailUsed     = newStatusError(2212, http.StatusConflict, "contact email is already in use")
	ErrPackageNameUsed      = newStatusError(2213, http.StatusConflict, "application package name is already in use")
	ErrBaseImageNameUsed    = newStatusError(2214, http.StatusConflict, "base image name is already in use")
	ErrEntityInUse          = newStatusError(2220, http.StatusConflict, "entity is still referenced and cannot be deleted")
)
