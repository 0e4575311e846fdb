package blobstore

import (
	"errors"

	azStorageBlob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

const (
	azblobBlobNotFound      = "BlobNotFound"
	azblobBlobAlreadyExists = "BlobAlreadyExists"
	azblobConditionNotMet   = "ConditionNotMet"
)

// AsStorageError extracts the azure storage error from err, whether it is
// carried by the sdk InternalError wrapper or directly.
func AsStorageError(err error) (azStorageBlob.StorageError, bool) {
	serr := &azStorageBlob.StorageError{}
	//nolint
	if ierr, ok := err.(*azStorageBlob.InternalError); ok && ierr != nil {
		if ierr.As(&serr) {
			return *serr, true
		}
		return azStorageBlob.StorageError{}, false
	}
	if errors.As(err, &serr) {
		return *serr, true
	}
	return azStorageBlob.StorageError{}, false
}

func hasErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}
	serr, ok := AsStorageError(err)
	if !ok {
		return false
	}
	for _, code := range codes {
		if string(serr.ErrorCode) == code {
			return true
		}
	}
	return false
}

func IsBlobNotFound(err error) bool {
	return hasErrorCode(err, azblobBlobNotFound)
}

// IsBlobExists reports a failed create, either an explicit conflict or the
// If-None-Match: * precondition.
func IsBlobExists(err error) bool {
	return hasErrorCode(err, azblobBlobAlreadyExists, azblobConditionNotMet)
}
