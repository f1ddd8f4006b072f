package errors

// Code identifies a specific failure condition.
// Codes are stable integers shared with the Parse server; they are never
// reassigned and new failure kinds always receive new codes.
type Code int

// Domain is the error domain reported for all Parse failures.
const Domain = "Parse"

const (
	// CodeOtherCause indicates a failure that did not originate from the Parse
	// taxonomy, such as a foreign error returned by a collaborator.
	CodeOtherCause Code = -1

	// CodeInternalServer indicates an internal server error. No information available.
	CodeInternalServer Code = 1

	// Request and object errors.

	// CodeConnectionFailed indicates the connection to the Parse servers failed.
	CodeConnectionFailed Code = 100

	// CodeObjectNotFound indicates the object doesn't exist, or has an incorrect password.
	CodeObjectNotFound Code = 101

	// CodeInvalidQuery indicates a query matched on a datatype that doesn't support
	// exact database matching, like an array or a dictionary.
	CodeInvalidQuery Code = 102

	// CodeInvalidClassName indicates a missing or invalid class name.
	// Class names are case-sensitive, must start with a letter, and a-zA-Z0-9_
	// are the only valid characters.
	CodeInvalidClassName Code = 103

	// CodeMissingObjectID indicates a missing object id.
	CodeMissingObjectID Code = 104

	// CodeInvalidKeyName indicates an invalid key name.
	// Keys are case-sensitive, must start with a letter, and a-zA-Z0-9_ are the
	// only valid characters.
	CodeInvalidKeyName Code = 105

	// CodeInvalidPointer indicates a malformed pointer.
	// Pointers must be arrays of a class name and an object id.
	CodeInvalidPointer Code = 106

	// CodeInvalidJSON indicates a malformed json object. A json dictionary is expected.
	CodeInvalidJSON Code = 107

	// CodeCommandUnavailable indicates an attempt to access a feature only available internally.
	CodeCommandUnavailable Code = 108

	// CodeIncorrectType indicates a field was set to an incorrect type.
	CodeIncorrectType Code = 111

	// CodeInvalidChannelName indicates an invalid channel name.
	// A channel name is either an empty string (the broadcast channel) or contains
	// only a-zA-Z0-9_ characters and starts with a letter.
	CodeInvalidChannelName Code = 112

	// CodeInvalidDeviceToken indicates an invalid device token.
	CodeInvalidDeviceToken Code = 114

	// CodePushMisconfigured indicates push is misconfigured.
	CodePushMisconfigured Code = 115

	// CodeObjectTooLarge indicates the object is too large.
	CodeObjectTooLarge Code = 116

	// CodeOperationForbidden indicates the operation isn't allowed for clients.
	CodeOperationForbidden Code = 119

	// CodeCacheMiss indicates the results were not found in the cache.
	CodeCacheMiss Code = 120

	// CodeInvalidNestedKey indicates keys in nested values included '$' or '.'.
	CodeInvalidNestedKey Code = 121

	// CodeInvalidFileName indicates an invalid file name.
	// A file name contains only a-zA-Z0-9_. characters and is between 1 and 36 characters.
	CodeInvalidFileName Code = 122

	// CodeInvalidACL indicates an ACL with an invalid format was saved.
	CodeInvalidACL Code = 123

	// CodeTimeout indicates the request timed out on the server.
	// Typically this indicates the request is too expensive.
	CodeTimeout Code = 124

	// CodeInvalidEmailAddress indicates the email address was invalid.
	CodeInvalidEmailAddress Code = 125

	// CodeDuplicateValue indicates a unique field was given a value that is already taken.
	CodeDuplicateValue Code = 137

	// CodeInvalidRoleName indicates the role's name is invalid.
	CodeInvalidRoleName Code = 139

	// CodeExceededQuota indicates an application quota was exceeded.
	CodeExceededQuota Code = 140

	// Cloud Code errors.

	// CodeScriptError indicates a Cloud Code script had an error.
	CodeScriptError Code = 141

	// CodeValidationError indicates Cloud Code validation failed.
	CodeValidationError Code = 142

	// Purchase errors.

	// CodeReceiptMissing indicates the product purchase receipt is missing.
	CodeReceiptMissing Code = 143

	// CodeInvalidPurchaseReceipt indicates the product purchase receipt is invalid.
	CodeInvalidPurchaseReceipt Code = 144

	// CodePaymentDisabled indicates payment is disabled on this device.
	CodePaymentDisabled Code = 145

	// CodeInvalidProductIdentifier indicates the product identifier is invalid.
	CodeInvalidProductIdentifier Code = 146

	// CodeProductNotFoundInAppStore indicates the product is not found in the App Store.
	CodeProductNotFoundInAppStore Code = 147

	// CodeInvalidServerResponse indicates the Apple server response is not valid.
	CodeInvalidServerResponse Code = 148

	// CodeProductDownloadFileSystemFailure indicates a product failed to download
	// due to a file system error.
	CodeProductDownloadFileSystemFailure Code = 149

	// File errors.

	// CodeInvalidImageData indicates data could not be converted to an image.
	CodeInvalidImageData Code = 150

	// CodeUnsavedFile indicates a file has not been saved.
	CodeUnsavedFile Code = 151

	// CodeFileDeleteFailure indicates a file could not be deleted.
	CodeFileDeleteFailure Code = 153

	// CodeRequestLimitExceeded indicates the application has exceeded its request limit.
	CodeRequestLimitExceeded Code = 155

	// CodeInvalidEventName indicates an invalid analytics event name.
	CodeInvalidEventName Code = 160

	// User errors.

	// CodeUsernameMissing indicates the username is missing or empty.
	CodeUsernameMissing Code = 200

	// CodeUserPasswordMissing indicates the password is missing or empty.
	CodeUserPasswordMissing Code = 201

	// CodeUsernameTaken indicates the username has already been taken.
	CodeUsernameTaken Code = 202

	// CodeUserEmailTaken indicates the email has already been taken.
	CodeUserEmailTaken Code = 203

	// CodeUserEmailMissing indicates the email is missing and must be specified.
	CodeUserEmailMissing Code = 204

	// CodeUserWithEmailNotFound indicates no user with the specified email was found.
	CodeUserWithEmailNotFound Code = 205

	// CodeUserCannotBeAlteredWithoutSession indicates the user cannot be altered by
	// a client without the session.
	CodeUserCannotBeAlteredWithoutSession Code = 206

	// CodeUserCanOnlyBeCreatedThroughSignUp indicates users can only be created through sign up.
	CodeUserCanOnlyBeCreatedThroughSignUp Code = 207

	// CodeAccountAlreadyLinked indicates an existing account is already linked to another user.
	CodeAccountAlreadyLinked Code = 208

	// CodeUserIDMismatch indicates a user id mismatch.
	CodeUserIDMismatch Code = 209

	// CodeLinkedIDMissing indicates the linked id is missing from the request.
	CodeLinkedIDMissing Code = 250

	// CodeInvalidLinkedSession indicates an invalid linked session.
	CodeInvalidLinkedSession Code = 251

	// Aliases kept for the Facebook-specific names of the linked-account codes.
	// They share the numeric value, and therefore the definition, of their
	// generic counterparts.

	// CodeFacebookAccountAlreadyLinked is an alias of CodeAccountAlreadyLinked.
	CodeFacebookAccountAlreadyLinked = CodeAccountAlreadyLinked

	// CodeFacebookIDMissing is an alias of CodeLinkedIDMissing.
	CodeFacebookIDMissing = CodeLinkedIDMissing

	// CodeFacebookInvalidSession is an alias of CodeInvalidLinkedSession.
	CodeFacebookInvalidSession = CodeInvalidLinkedSession
)
