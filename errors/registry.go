package errors

import (
	"fmt"
	"sort"
)

// Definition describes one registered error code.
type Definition struct {
	// Code is the stable numeric code.
	Code Code
	// Name is the canonical symbolic name of the code.
	Name string
	// Aliases lists additional documented names sharing this code.
	Aliases []string
	// Description is the documented meaning of the code.
	Description string
	// Classification is the default retry classification of the code.
	Classification ErrorClassification
}

// registry is the immutable code-to-meaning mapping.
// It is populated once at init and never mutated afterwards.
var registry = map[Code]Definition{}

// definitions lists every registered code in source order.
var definitions = []Definition{
	{Code: CodeOtherCause, Name: "OtherCause", Description: "An error occurred outside of the Parse taxonomy."},
	{Code: CodeInternalServer, Name: "InternalServer", Description: "Internal server error. No information available."},
	{Code: CodeConnectionFailed, Name: "ConnectionFailed", Description: "The connection to the Parse servers failed."},
	{Code: CodeObjectNotFound, Name: "ObjectNotFound", Description: "Object doesn't exist, or has an incorrect password."},
	{Code: CodeInvalidQuery, Name: "InvalidQuery", Description: "Tried to find values matching a datatype that doesn't support exact database matching, like an array or a dictionary."},
	{Code: CodeInvalidClassName, Name: "InvalidClassName", Description: "Missing or invalid classname. Classnames are case-sensitive. They must start with a letter, and a-zA-Z0-9_ are the only valid characters."},
	{Code: CodeMissingObjectID, Name: "MissingObjectID", Description: "Missing object id."},
	{Code: CodeInvalidKeyName, Name: "InvalidKeyName", Description: "Invalid key name. Keys are case-sensitive. They must start with a letter, and a-zA-Z0-9_ are the only valid characters."},
	{Code: CodeInvalidPointer, Name: "InvalidPointer", Description: "Malformed pointer. Pointers must be arrays of a classname and an object id."},
	{Code: CodeInvalidJSON, Name: "InvalidJSON", Description: "Malformed json object. A json dictionary is expected."},
	{Code: CodeCommandUnavailable, Name: "CommandUnavailable", Description: "Tried to access a feature only available internally."},
	{Code: CodeIncorrectType, Name: "IncorrectType", Description: "Field set to incorrect type."},
	{Code: CodeInvalidChannelName, Name: "InvalidChannelName", Description: "Invalid channel name. A channel name is either an empty string (the broadcast channel) or contains only a-zA-Z0-9_ characters and starts with a letter."},
	{Code: CodeInvalidDeviceToken, Name: "InvalidDeviceToken", Description: "Invalid device token."},
	{Code: CodePushMisconfigured, Name: "PushMisconfigured", Description: "Push is misconfigured. See details to find out how."},
	{Code: CodeObjectTooLarge, Name: "ObjectTooLarge", Description: "The object is too large."},
	{Code: CodeOperationForbidden, Name: "OperationForbidden", Description: "That operation isn't allowed for clients."},
	{Code: CodeCacheMiss, Name: "CacheMiss", Description: "The results were not found in the cache."},
	{Code: CodeInvalidNestedKey, Name: "InvalidNestedKey", Description: "Keys in nested values may not include '$' or '.'."},
	{Code: CodeInvalidFileName, Name: "InvalidFileName", Description: "Invalid file name. A file name contains only a-zA-Z0-9_. characters and is between 1 and 36 characters."},
	{Code: CodeInvalidACL, Name: "InvalidACL", Description: "Invalid ACL. An ACL with an invalid format was saved."},
	{Code: CodeTimeout, Name: "Timeout", Description: "The request timed out on the server. Typically this indicates the request is too expensive."},
	{Code: CodeInvalidEmailAddress, Name: "InvalidEmailAddress", Description: "The email address was invalid."},
	{Code: CodeDuplicateValue, Name: "DuplicateValue", Description: "A unique field was given a value that is already taken."},
	{Code: CodeInvalidRoleName, Name: "InvalidRoleName", Description: "Role's name is invalid."},
	{Code: CodeExceededQuota, Name: "ExceededQuota", Description: "Exceeded an application quota. Upgrade to resolve."},
	{Code: CodeScriptError, Name: "ScriptError", Description: "Cloud Code script had an error."},
	{Code: CodeValidationError, Name: "ValidationError", Description: "Cloud Code validation failed."},
	{Code: CodeReceiptMissing, Name: "ReceiptMissing", Description: "Product purchase receipt is missing."},
	{Code: CodeInvalidPurchaseReceipt, Name: "InvalidPurchaseReceipt", Description: "Product purchase receipt is invalid."},
	{Code: CodePaymentDisabled, Name: "PaymentDisabled", Description: "Payment is disabled on this device."},
	{Code: CodeInvalidProductIdentifier, Name: "InvalidProductIdentifier", Description: "The product identifier is invalid."},
	{Code: CodeProductNotFoundInAppStore, Name: "ProductNotFoundInAppStore", Description: "The product is not found in the App Store."},
	{Code: CodeInvalidServerResponse, Name: "InvalidServerResponse", Description: "The Apple server response is not valid."},
	{Code: CodeProductDownloadFileSystemFailure, Name: "ProductDownloadFileSystemFailure", Description: "Product fails to download due to file system error."},
	{Code: CodeInvalidImageData, Name: "InvalidImageData", Description: "Fail to convert data to image."},
	{Code: CodeUnsavedFile, Name: "UnsavedFile", Description: "Unsaved file."},
	{Code: CodeFileDeleteFailure, Name: "FileDeleteFailure", Description: "Fail to delete file."},
	{Code: CodeRequestLimitExceeded, Name: "RequestLimitExceeded", Description: "Application has exceeded its request limit."},
	{Code: CodeInvalidEventName, Name: "InvalidEventName", Description: "Invalid event name."},
	{Code: CodeUsernameMissing, Name: "UsernameMissing", Description: "Username is missing or empty."},
	{Code: CodeUserPasswordMissing, Name: "UserPasswordMissing", Description: "Password is missing or empty."},
	{Code: CodeUsernameTaken, Name: "UsernameTaken", Description: "Username has already been taken."},
	{Code: CodeUserEmailTaken, Name: "UserEmailTaken", Description: "Email has already been taken."},
	{Code: CodeUserEmailMissing, Name: "UserEmailMissing", Description: "The email is missing, and must be specified."},
	{Code: CodeUserWithEmailNotFound, Name: "UserWithEmailNotFound", Description: "A user with the specified email was not found."},
	{Code: CodeUserCannotBeAlteredWithoutSession, Name: "UserCannotBeAlteredWithoutSession", Description: "The user cannot be altered by a client without the session."},
	{Code: CodeUserCanOnlyBeCreatedThroughSignUp, Name: "UserCanOnlyBeCreatedThroughSignUp", Description: "Users can only be created through sign up."},
	{Code: CodeAccountAlreadyLinked, Name: "AccountAlreadyLinked", Aliases: []string{"FacebookAccountAlreadyLinked"}, Description: "An existing account already linked to another user."},
	{Code: CodeUserIDMismatch, Name: "UserIDMismatch", Description: "User ID mismatch."},
	{Code: CodeLinkedIDMissing, Name: "LinkedIDMissing", Aliases: []string{"FacebookIDMissing"}, Description: "Linked id missing from request."},
	{Code: CodeInvalidLinkedSession, Name: "InvalidLinkedSession", Aliases: []string{"FacebookInvalidSession"}, Description: "Invalid linked session."},
}

// byName indexes canonical names and aliases.
var byName = map[string]Code{}

func init() {
	for _, def := range definitions {
		if _, dup := registry[def.Code]; dup {
			panic(fmt.Sprintf("errors: code %d registered twice", def.Code))
		}
		def.Classification = getDefaultClassification(def.Code)
		registry[def.Code] = def
		byName[def.Name] = def.Code
		for _, alias := range def.Aliases {
			byName[alias] = def.Code
		}
	}
}

// Lookup returns the definition registered for code.
func Lookup(code Code) (Definition, bool) {
	def, ok := registry[code]
	if !ok {
		return Definition{}, false
	}
	return def.clone(), true
}

// LookupName resolves a canonical name or alias to its code.
func LookupName(name string) (Code, bool) {
	code, ok := byName[name]
	return code, ok
}

// IsRegistered reports whether code is part of the registry.
func IsRegistered(code Code) bool {
	_, ok := registry[code]
	return ok
}

// Definitions returns every registered definition sorted by ascending code.
func Definitions() []Definition {
	out := make([]Definition, 0, len(registry))
	for _, def := range registry {
		out = append(out, def.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// String returns the canonical symbolic name of the code,
// or "Code(n)" if the code is not registered.
func (c Code) String() string {
	if def, ok := registry[c]; ok {
		return def.Name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Description returns the documented meaning of the code.
// Returns an empty string if the code is not registered.
func (c Code) Description() string {
	return registry[c].Description
}

// Names returns the canonical name followed by any aliases.
// Returns nil if the code is not registered.
func (c Code) Names() []string {
	def, ok := registry[c]
	if !ok {
		return nil
	}
	names := make([]string, 0, 1+len(def.Aliases))
	names = append(names, def.Name)
	return append(names, def.Aliases...)
}

func (d Definition) clone() Definition {
	if d.Aliases != nil {
		d.Aliases = append([]string(nil), d.Aliases...)
	}
	return d
}
