// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ProtectedError GenericError
type RecordError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	AlreadyStaked                = StateError("asset is already staked")
	AssetNotFound                = NotFoundError("asset not found")
	AttributeLengthMismatch      = LengthError("attribute keys and values differ in length")
	CannotDecodeAccount          = RecordError("cannot decode account")
	CannotDecodePrivateKey       = RecordError("cannot decode private key")
	CapabilityNotFound           = NotFoundError("capability not found")
	CatalogPaused                = StateError("catalog is paused")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CertificateFileNotFound      = NotFoundError("certificate file not found")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	ConfigurationFileNotFound    = NotFoundError("configuration file not found")
	ConfigurationNotATable       = InvalidError("configuration must return a table")
	CryptoFailed                 = ProcessError("crypto failed")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DatabaseIsReadOnly           = ProcessError("database is read only")
	DuplicateAsset               = ExistsError("duplicate asset in batch")
	DuplicateAttributeKey        = ExistsError("duplicate attribute key")
	DuplicateIdentifier          = ExistsError("duplicate token identifier")
	DuplicatePublicKey           = ExistsError("duplicate public key")
	EmptyBatch                   = LengthError("batch is empty")
	ExpiryTooDistant             = InvalidError("request expiry is too far in the future")
	FieldTooLong                 = LengthError("field too long")
	IdentityNameAlreadyExists    = ExistsError("identity name already exists")
	IdentityNameNotFound         = NotFoundError("identity name not found")
	IncompatibleOptions          = InvalidError("incompatible options")
	InsufficientSignatures       = AuthorisationError("insufficient signature weight")
	InvalidCapability            = AuthorisationError("invalid capability")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIdentifier            = InvalidError("invalid identifier")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidMaximum               = InvalidError("invalid maximum per holder")
	InvalidPasswordLength        = LengthError("password is too short")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidSeedHeader            = InvalidError("invalid seed header")
	InvalidSeedLength            = InvalidError("invalid seed length")
	InvalidSignature             = AuthorisationError("invalid signature")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	KeyFileNotFound              = NotFoundError("key file not found")
	KeyNotInPolicy               = InvalidError("key is not part of the policy")
	LastCapability               = ProtectedError("cannot remove the last capability")
	LedgerPaused                 = StateError("ledger is paused")
	LengthMismatch               = LengthError("batch lengths differ")
	MaxStakeExceeded             = StateError("maximum stake per holder exceeded")
	MissingParameters            = InvalidError("missing parameters")
	NotAMultisigAccount          = InvalidError("not a multisig account")
	NotAPrivateKey               = InvalidError("not a private key")
	NotAPublicKey                = InvalidError("not a public key")
	NotAssetOwner                = AuthorisationError("asset is not owned by principal")
	NotAuthorisedSigner          = AuthorisationError("principal is not the multisig address")
	NotAvailable                 = StateError("service is not available")
	NotConfigured                = StateError("multisig is not configured")
	NotInitialised               = NotFoundError("not initialised")
	NotOriginalStaker            = AuthorisationError("caller is not the original staker")
	NotRecordPack                = RecordError("not a record pack")
	NotStaked                    = StateError("asset is not staked")
	PasswordMismatch             = InvalidError("passwords do not match")
	PolicyLengthMismatch         = LengthError("policy keys and weights differ in length")
	RateLimiting                 = InvalidError("rate limiting")
	RequestExpired               = AuthorisationError("request has expired")
	RequestReplayed              = AuthorisationError("request was already received")
	StakeIndexCorrupt            = ProcessError("stake index corrupt")
	ThresholdUnreachable         = InvalidError("threshold exceeds total weight")
	TooManyAttributes            = LengthError("too many attributes")
	TooManyKeys                  = LengthError("too many keys in policy")
	TransactionEnded             = ProcessError("transaction has ended")
	Unauthorised                 = AuthorisationError("principal is not authorised")
	UnknownCapabilityKind        = InvalidError("unknown capability kind")
	UnknownEventType             = InvalidError("unknown event type")
	WeightTooLarge               = InvalidError("weight too large")
	WrongInstance                = AuthorisationError("capability bound to another ledger")
	WrongNetworkForAccount       = InvalidError("wrong network for account")
	WrongPassword                = InvalidError("wrong password")
	ZeroKeys                     = LengthError("policy has no keys")
	ZeroThreshold                = InvalidError("threshold must be positive")
	ZeroWeight                   = InvalidError("weight must be positive")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e ProtectedError) Error() string     { return string(e) }
func (e RecordError) Error() string        { return string(e) }
func (e StateError) Error() string         { return string(e) }

// IsErrAuthorisation - the caller lacks permission
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }

// IsErrExists - an item already exists
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - argument or value is invalid
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - a length is wrong
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - an item was not found
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - processing failed
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrProtected - an invariant would be broken
func IsErrProtected(e error) bool { _, ok := e.(ProtectedError); return ok }

// IsErrRecord - a stored record is damaged
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }

// IsErrState - the current state does not permit the operation
func IsErrState(e error) bool { _, ok := e.(StateError); return ok }
