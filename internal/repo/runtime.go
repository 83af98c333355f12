// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/Alijeyrad/crm_backend/internal/repo/account"
	"github.com/Alijeyrad/crm_backend/internal/repo/casepipeline"
	"github.com/Alijeyrad/crm_backend/internal/repo/casestage"
	"github.com/Alijeyrad/crm_backend/internal/repo/membership"
	"github.com/Alijeyrad/crm_backend/internal/repo/organization"
	"github.com/Alijeyrad/crm_backend/internal/repo/supportcase"
	"github.com/Alijeyrad/crm_backend/internal/repo/tag"
	"github.com/Alijeyrad/crm_backend/internal/repo/user"
	"github.com/Alijeyrad/crm_backend/internal/schema"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountMixin := schema.Account{}.Mixin()
	accountMixinFields0 := accountMixin[0].Fields()
	_ = accountMixinFields0
	accountMixinFields2 := accountMixin[2].Fields()
	_ = accountMixinFields2
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountMixinFields2[0].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountMixinFields2[1].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	// accountDescName is the schema descriptor for name field.
	accountDescName := accountFields[0].Descriptor()
	// account.NameValidator is a validator for the "name" field. It is called by the builders before save.
	account.NameValidator = func() func(string) error {
		validators := accountDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// accountDescID is the schema descriptor for id field.
	accountDescID := accountMixinFields0[0].Descriptor()
	// account.DefaultID holds the default value on creation for the id field.
	account.DefaultID = accountDescID.Default.(func() uuid.UUID)
	casepipelineMixin := schema.CasePipeline{}.Mixin()
	casepipelineMixinFields0 := casepipelineMixin[0].Fields()
	_ = casepipelineMixinFields0
	casepipelineMixinFields2 := casepipelineMixin[2].Fields()
	_ = casepipelineMixinFields2
	casepipelineFields := schema.CasePipeline{}.Fields()
	_ = casepipelineFields
	// casepipelineDescCreatedAt is the schema descriptor for created_at field.
	casepipelineDescCreatedAt := casepipelineMixinFields2[0].Descriptor()
	// casepipeline.DefaultCreatedAt holds the default value on creation for the created_at field.
	casepipeline.DefaultCreatedAt = casepipelineDescCreatedAt.Default.(func() time.Time)
	// casepipelineDescUpdatedAt is the schema descriptor for updated_at field.
	casepipelineDescUpdatedAt := casepipelineMixinFields2[1].Descriptor()
	// casepipeline.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	casepipeline.DefaultUpdatedAt = casepipelineDescUpdatedAt.Default.(func() time.Time)
	// casepipeline.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	casepipeline.UpdateDefaultUpdatedAt = casepipelineDescUpdatedAt.UpdateDefault.(func() time.Time)
	// casepipelineDescName is the schema descriptor for name field.
	casepipelineDescName := casepipelineFields[0].Descriptor()
	// casepipeline.NameValidator is a validator for the "name" field. It is called by the builders before save.
	casepipeline.NameValidator = func() func(string) error {
		validators := casepipelineDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// casepipelineDescIsActive is the schema descriptor for is_active field.
	casepipelineDescIsActive := casepipelineFields[1].Descriptor()
	// casepipeline.DefaultIsActive holds the default value on creation for the is_active field.
	casepipeline.DefaultIsActive = casepipelineDescIsActive.Default.(bool)
	// casepipelineDescID is the schema descriptor for id field.
	casepipelineDescID := casepipelineMixinFields0[0].Descriptor()
	// casepipeline.DefaultID holds the default value on creation for the id field.
	casepipeline.DefaultID = casepipelineDescID.Default.(func() uuid.UUID)
	casestageMixin := schema.CaseStage{}.Mixin()
	casestageMixinFields0 := casestageMixin[0].Fields()
	_ = casestageMixinFields0
	casestageMixinFields2 := casestageMixin[2].Fields()
	_ = casestageMixinFields2
	casestageFields := schema.CaseStage{}.Fields()
	_ = casestageFields
	// casestageDescCreatedAt is the schema descriptor for created_at field.
	casestageDescCreatedAt := casestageMixinFields2[0].Descriptor()
	// casestage.DefaultCreatedAt holds the default value on creation for the created_at field.
	casestage.DefaultCreatedAt = casestageDescCreatedAt.Default.(func() time.Time)
	// casestageDescUpdatedAt is the schema descriptor for updated_at field.
	casestageDescUpdatedAt := casestageMixinFields2[1].Descriptor()
	// casestage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	casestage.DefaultUpdatedAt = casestageDescUpdatedAt.Default.(func() time.Time)
	// casestage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	casestage.UpdateDefaultUpdatedAt = casestageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// casestageDescName is the schema descriptor for name field.
	casestageDescName := casestageFields[1].Descriptor()
	// casestage.NameValidator is a validator for the "name" field. It is called by the builders before save.
	casestage.NameValidator = func() func(string) error {
		validators := casestageDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// casestageDescPosition is the schema descriptor for position field.
	casestageDescPosition := casestageFields[2].Descriptor()
	// casestage.DefaultPosition holds the default value on creation for the position field.
	casestage.DefaultPosition = casestageDescPosition.Default.(int)
	// casestage.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	casestage.PositionValidator = casestageDescPosition.Validators[0].(func(int) error)
	// casestageDescColor is the schema descriptor for color field.
	casestageDescColor := casestageFields[3].Descriptor()
	// casestage.DefaultColor holds the default value on creation for the color field.
	casestage.DefaultColor = casestageDescColor.Default.(string)
	// casestage.ColorValidator is a validator for the "color" field. It is called by the builders before save.
	casestage.ColorValidator = func() func(string) error {
		validators := casestageDescColor.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(color string) error {
			for _, fn := range fns {
				if err := fn(color); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// casestageDescMapsToStatus is the schema descriptor for maps_to_status field.
	casestageDescMapsToStatus := casestageFields[5].Descriptor()
	// casestage.MapsToStatusValidator is a validator for the "maps_to_status" field. It is called by the builders before save.
	casestage.MapsToStatusValidator = casestageDescMapsToStatus.Validators[0].(func(string) error)
	// casestageDescWipLimit is the schema descriptor for wip_limit field.
	casestageDescWipLimit := casestageFields[6].Descriptor()
	// casestage.WipLimitValidator is a validator for the "wip_limit" field. It is called by the builders before save.
	casestage.WipLimitValidator = casestageDescWipLimit.Validators[0].(func(int) error)
	// casestageDescID is the schema descriptor for id field.
	casestageDescID := casestageMixinFields0[0].Descriptor()
	// casestage.DefaultID holds the default value on creation for the id field.
	casestage.DefaultID = casestageDescID.Default.(func() uuid.UUID)
	membershipMixin := schema.Membership{}.Mixin()
	membershipMixinFields0 := membershipMixin[0].Fields()
	_ = membershipMixinFields0
	membershipMixinFields2 := membershipMixin[2].Fields()
	_ = membershipMixinFields2
	membershipFields := schema.Membership{}.Fields()
	_ = membershipFields
	// membershipDescCreatedAt is the schema descriptor for created_at field.
	membershipDescCreatedAt := membershipMixinFields2[0].Descriptor()
	// membership.DefaultCreatedAt holds the default value on creation for the created_at field.
	membership.DefaultCreatedAt = membershipDescCreatedAt.Default.(func() time.Time)
	// membershipDescUpdatedAt is the schema descriptor for updated_at field.
	membershipDescUpdatedAt := membershipMixinFields2[1].Descriptor()
	// membership.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	membership.DefaultUpdatedAt = membershipDescUpdatedAt.Default.(func() time.Time)
	// membership.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	membership.UpdateDefaultUpdatedAt = membershipDescUpdatedAt.UpdateDefault.(func() time.Time)
	// membershipDescIsActive is the schema descriptor for is_active field.
	membershipDescIsActive := membershipFields[2].Descriptor()
	// membership.DefaultIsActive holds the default value on creation for the is_active field.
	membership.DefaultIsActive = membershipDescIsActive.Default.(bool)
	// membershipDescID is the schema descriptor for id field.
	membershipDescID := membershipMixinFields0[0].Descriptor()
	// membership.DefaultID holds the default value on creation for the id field.
	membership.DefaultID = membershipDescID.Default.(func() uuid.UUID)
	organizationMixin := schema.Organization{}.Mixin()
	organizationMixinFields0 := organizationMixin[0].Fields()
	_ = organizationMixinFields0
	organizationMixinFields1 := organizationMixin[1].Fields()
	_ = organizationMixinFields1
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationMixinFields1[0].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationMixinFields1[1].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organization.UpdateDefaultUpdatedAt = organizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// organizationDescName is the schema descriptor for name field.
	organizationDescName := organizationFields[0].Descriptor()
	// organization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organization.NameValidator = func() func(string) error {
		validators := organizationDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// organizationDescIsActive is the schema descriptor for is_active field.
	organizationDescIsActive := organizationFields[1].Descriptor()
	// organization.DefaultIsActive holds the default value on creation for the is_active field.
	organization.DefaultIsActive = organizationDescIsActive.Default.(bool)
	// organizationDescID is the schema descriptor for id field.
	organizationDescID := organizationMixinFields0[0].Descriptor()
	// organization.DefaultID holds the default value on creation for the id field.
	organization.DefaultID = organizationDescID.Default.(func() uuid.UUID)
	supportcaseMixin := schema.SupportCase{}.Mixin()
	supportcaseMixinFields0 := supportcaseMixin[0].Fields()
	_ = supportcaseMixinFields0
	supportcaseMixinFields2 := supportcaseMixin[2].Fields()
	_ = supportcaseMixinFields2
	supportcaseFields := schema.SupportCase{}.Fields()
	_ = supportcaseFields
	// supportcaseDescCreatedAt is the schema descriptor for created_at field.
	supportcaseDescCreatedAt := supportcaseMixinFields2[0].Descriptor()
	// supportcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	supportcase.DefaultCreatedAt = supportcaseDescCreatedAt.Default.(func() time.Time)
	// supportcaseDescUpdatedAt is the schema descriptor for updated_at field.
	supportcaseDescUpdatedAt := supportcaseMixinFields2[1].Descriptor()
	// supportcase.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	supportcase.DefaultUpdatedAt = supportcaseDescUpdatedAt.Default.(func() time.Time)
	// supportcase.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	supportcase.UpdateDefaultUpdatedAt = supportcaseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// supportcaseDescName is the schema descriptor for name field.
	supportcaseDescName := supportcaseFields[0].Descriptor()
	// supportcase.NameValidator is a validator for the "name" field. It is called by the builders before save.
	supportcase.NameValidator = func() func(string) error {
		validators := supportcaseDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// supportcaseDescDescription is the schema descriptor for description field.
	supportcaseDescDescription := supportcaseFields[1].Descriptor()
	// supportcase.DefaultDescription holds the default value on creation for the description field.
	supportcase.DefaultDescription = supportcaseDescDescription.Default.(string)
	// supportcaseDescKanbanOrder is the schema descriptor for kanban_order field.
	supportcaseDescKanbanOrder := supportcaseFields[7].Descriptor()
	// supportcase.DefaultKanbanOrder holds the default value on creation for the kanban_order field.
	supportcase.DefaultKanbanOrder = supportcaseDescKanbanOrder.Default.(decimal.Decimal)
	// supportcaseDescID is the schema descriptor for id field.
	supportcaseDescID := supportcaseMixinFields0[0].Descriptor()
	// supportcase.DefaultID holds the default value on creation for the id field.
	supportcase.DefaultID = supportcaseDescID.Default.(func() uuid.UUID)
	tagMixin := schema.Tag{}.Mixin()
	tagMixinFields0 := tagMixin[0].Fields()
	_ = tagMixinFields0
	tagMixinFields2 := tagMixin[2].Fields()
	_ = tagMixinFields2
	tagFields := schema.Tag{}.Fields()
	_ = tagFields
	// tagDescCreatedAt is the schema descriptor for created_at field.
	tagDescCreatedAt := tagMixinFields2[0].Descriptor()
	// tag.DefaultCreatedAt holds the default value on creation for the created_at field.
	tag.DefaultCreatedAt = tagDescCreatedAt.Default.(func() time.Time)
	// tagDescName is the schema descriptor for name field.
	tagDescName := tagFields[0].Descriptor()
	// tag.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tag.NameValidator = func() func(string) error {
		validators := tagDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tagDescID is the schema descriptor for id field.
	tagDescID := tagMixinFields0[0].Descriptor()
	// tag.DefaultID holds the default value on creation for the id field.
	tag.DefaultID = tagDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.DefaultName holds the default value on creation for the name field.
	user.DefaultName = userDescName.Default.(string)
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescIsSuperuser is the schema descriptor for is_superuser field.
	userDescIsSuperuser := userFields[2].Descriptor()
	// user.DefaultIsSuperuser holds the default value on creation for the is_superuser field.
	user.DefaultIsSuperuser = userDescIsSuperuser.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
