/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Michael Saigachenko
 */

package config

func char(name string) HostField {
	return HostField{Name: name, Kind: "Char"}
}

func many2one(name, target string) HostField {
	return HostField{Name: name, Kind: "Many2one", Target: target}
}

// DefaultHosts are the platform models a module may extend without declaring them
func DefaultHosts() []HostModel {
	return []HostModel{
		{
			ID:             "res.partner",
			Permissiveness: "unprefixed",
			Fields: []HostField{
				char("name"),
				char("email"),
				char("phone"),
				char("mobile"),
				char("street"),
				char("street2"),
				char("city"),
				char("zip"),
				char("vat"),
				char("ref"),
				char("contact_address"),
				{Name: "comment", Kind: "Html"},
				{Name: "is_company", Kind: "Boolean"},
				{Name: "active", Kind: "Boolean"},
				{Name: "type", Kind: "Selection", Options: []string{"contact", "invoice", "delivery", "other"}},
				many2one("parent_id", "res.partner"),
				many2one("country_id", "res.country"),
				many2one("state_id", "res.country.state"),
				many2one("company_id", "res.company"),
				many2one("user_id", "res.users"),
				{Name: "child_ids", Kind: "One2many", Target: "res.partner"},
				{Name: "category_id", Kind: "Many2many", Target: "res.partner.category"},
			},
		},
		{
			ID:             "res.users",
			Permissiveness: "unprefixed",
			Fields: []HostField{
				char("name"),
				char("login"),
				{Name: "active", Kind: "Boolean"},
				many2one("partner_id", "res.partner"),
				many2one("company_id", "res.company"),
				{Name: "groups_id", Kind: "Many2many", Target: "res.groups"},
			},
		},
		{
			ID:             "res.company",
			Permissiveness: "unprefixed",
			Fields: []HostField{
				char("name"),
				many2one("partner_id", "res.partner"),
				many2one("currency_id", "res.currency"),
				many2one("country_id", "res.country"),
			},
		},
		{
			ID:             "res.country",
			Permissiveness: "strict",
			Fields: []HostField{
				char("name"),
				char("code"),
				char("phone_code"),
				many2one("currency_id", "res.currency"),
			},
		},
		{
			ID:             "res.country.state",
			Permissiveness: "strict",
			Fields: []HostField{
				char("name"),
				char("code"),
				many2one("country_id", "res.country"),
			},
		},
		{
			ID:             "res.currency",
			Permissiveness: "strict",
			Fields: []HostField{
				char("name"),
				char("symbol"),
				{Name: "rounding", Kind: "Float"},
				{Name: "active", Kind: "Boolean"},
			},
		},
		{ID: "res.groups", Permissiveness: "unprefixed", Fields: []HostField{char("name")}},
		{ID: "res.partner.category", Permissiveness: "unprefixed", Fields: []HostField{char("name")}},
		{
			ID:             "mail.thread",
			Permissiveness: "strict",
			Fields: []HostField{
				{Name: "message_is_follower", Kind: "Boolean"},
				{Name: "message_follower_ids", Kind: "One2many", Target: "mail.followers"},
				{Name: "message_partner_ids", Kind: "Many2many", Target: "res.partner"},
				{Name: "message_ids", Kind: "One2many", Target: "mail.message"},
				{Name: "website_message_ids", Kind: "One2many", Target: "mail.message"},
				{Name: "has_message", Kind: "Boolean"},
				{Name: "message_needaction", Kind: "Boolean"},
				{Name: "message_needaction_counter", Kind: "Integer"},
				{Name: "message_has_error", Kind: "Boolean"},
				{Name: "message_has_error_counter", Kind: "Integer"},
				{Name: "message_has_sms_error", Kind: "Boolean"},
				{Name: "message_attachment_count", Kind: "Integer"},
				many2one("message_main_attachment_id", "ir.attachment"),
			},
		},
		{
			ID:             "mail.activity.mixin",
			Permissiveness: "strict",
			Fields: []HostField{
				{Name: "activity_ids", Kind: "One2many", Target: "mail.activity"},
				{Name: "activity_state", Kind: "Selection", Options: []string{"overdue", "today", "planned"}},
				many2one("activity_user_id", "res.users"),
				many2one("activity_type_id", "mail.activity.type"),
				char("activity_type_icon"),
				{Name: "activity_date_deadline", Kind: "Date"},
				{Name: "my_activity_date_deadline", Kind: "Date"},
				char("activity_summary"),
				{Name: "activity_exception_decoration", Kind: "Selection", Options: []string{"warning", "danger"}},
				char("activity_exception_icon"),
				many2one("activity_calendar_event_id", "calendar.event"),
			},
		},
		{ID: "ir.model"},
		{ID: "ir.model.fields"},
		{ID: "ir.model.access"},
		{ID: "ir.rule"},
		{ID: "ir.ui.view"},
		{ID: "ir.ui.menu"},
		{ID: "ir.actions.act_window"},
		{ID: "ir.actions.server"},
		{ID: "ir.cron"},
		{ID: "ir.sequence"},
		{ID: "ir.attachment"},
		{ID: "ir.config_parameter"},
		{ID: "product.template"},
		{ID: "product.product"},
		{ID: "uom.uom"},
	}
}
