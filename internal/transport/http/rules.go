package http

import "gallery_board/internal/lib/validation"

const (
	msgInvalidAccess      = "Invalid access."
	msgLoginRequired      = "Please log in to continue."
	msgContentRequired    = "Please enter content."
	msgTitleRequired      = "Please enter a title."
	msgRegionNameRequired = "Please enter a region name."
	msgGalleryName        = "Gallery name is required."
	msgGalleryDescription = "Please write a short description of the gallery."
	msgCommentPassword    = "The password is not correct."
	msgCommentMissing     = "The comment does not exist."
	msgDeleteAuthorOnly   = "Only the author can delete this."
	msgEditAuthorOnly     = "Only the author can edit this."
	msgPasswordIncorrect  = "The password is incorrect."
)

const (
	ruleID       = "required,integer"
	ruleOptID    = "integer"
	ruleName     = "required,string,max=255"
	rulePassword = "required,string,max=255"
)

// Field order is the order in which a failing field is reported.
var (
	registerRules = validation.Table{
		{Name: "user_name", Rules: ruleName},
		{Name: "email", Rules: "required,string,email,max=255,unique_email"},
		{Name: "password", Rules: "required,string,min=8,confirmed"},
	}

	createRegionRules = validation.Table{
		{Name: "name", Rules: ruleName, Message: msgRegionNameRequired},
	}

	listGalleriesRules = validation.Table{
		{Name: "region_id", Rules: ruleID, Message: msgInvalidAccess},
		{Name: "page", Rules: ruleOptID, Message: msgInvalidAccess},
	}

	createGalleryRules = validation.Table{
		{Name: "region_id", Rules: ruleID, Message: msgInvalidAccess},
		{Name: "name", Rules: ruleName, Message: msgGalleryName},
		{Name: "description", Rules: ruleName, Message: msgGalleryDescription},
		{Name: "manager_id", Rules: ruleID, Message: msgLoginRequired},
		{Name: "sub_manager_1", Rules: ruleOptID, Message: msgInvalidAccess},
		{Name: "sub_manager_2", Rules: ruleOptID, Message: msgInvalidAccess},
		{Name: "sub_manager_3", Rules: ruleOptID, Message: msgInvalidAccess},
		{Name: "sub_manager_4", Rules: ruleOptID, Message: msgInvalidAccess},
		{Name: "sub_manager_5", Rules: ruleOptID, Message: msgInvalidAccess},
	}

	deleteGalleryRules = validation.Table{
		{Name: "region_id", Rules: ruleID, Message: msgInvalidAccess},
		{Name: "gallery_id", Rules: ruleID, Message: msgInvalidAccess},
		{Name: "manager_id", Rules: ruleID, Message: msgLoginRequired},
	}

	listPostsRules = validation.Table{
		{Name: "gallery_id", Rules: ruleID, Message: msgInvalidAccess},
		{Name: "page", Rules: ruleOptID, Message: msgInvalidAccess},
	}

	viewPostRules = validation.Table{
		{Name: "gallery_id", Rules: ruleID, Message: msgInvalidAccess},
		{Name: "post_id", Rules: ruleID, Message: msgInvalidAccess},
	}

	createPostRules = validation.Table{
		{Name: "gallery_id", Rules: ruleID, Message: msgInvalidAccess},
		{Name: "user_id", Rules: ruleID, Message: msgLoginRequired},
		{Name: "user_name", Rules: ruleName, Message: msgLoginRequired},
		{Name: "title", Rules: ruleName, Message: msgTitleRequired},
		{Name: "content", Rules: "required", Message: msgContentRequired},
	}

	updatePostRules = validation.Table{
		{Name: "gallery_id", Rules: ruleID, Message: msgInvalidAccess},
		{Name: "post_id", Rules: ruleID, Message: msgInvalidAccess},
		{Name: "user_id", Rules: ruleID, Message: msgLoginRequired},
		{Name: "title", Rules: ruleName, Message: msgTitleRequired},
		{Name: "content", Rules: "required", Message: msgContentRequired},
	}

	deletePostRules = validation.Table{
		{Name: "gallery_id", Rules: ruleID, Message: msgInvalidAccess},
		{Name: "post_id", Rules: ruleID, Message: msgInvalidAccess},
		{Name: "user_id", Rules: ruleID, Message: msgLoginRequired},
	}

	listCommentsRules = validation.Table{
		{Name: "post_id", Rules: ruleID, Message: msgInvalidAccess},
	}

	createCommentRules = validation.Table{
		{Name: "post_id", Rules: ruleID, Message: msgInvalidAccess},
		{Name: "user_id", Rules: ruleID, Message: msgLoginRequired},
		{Name: "user_name", Rules: "string,max=255", Message: msgLoginRequired},
		{Name: "content", Rules: "required", Message: msgContentRequired},
		{Name: "password", Rules: rulePassword, Message: msgCommentPassword},
		{Name: "parent_comment_id", Rules: ruleOptID, Message: msgInvalidAccess},
	}

	updateCommentRules = validation.Table{
		{Name: "post_id", Rules: ruleID, Message: msgInvalidAccess},
		{Name: "comment_id", Rules: ruleID, Message: msgCommentMissing},
		{Name: "user_id", Rules: ruleID, Message: msgEditAuthorOnly},
		{Name: "password", Rules: rulePassword, Message: msgPasswordIncorrect},
		{Name: "content", Rules: "required", Message: msgContentRequired},
	}

	deleteCommentRules = validation.Table{
		{Name: "post_id", Rules: ruleID, Message: msgInvalidAccess},
		{Name: "comment_id", Rules: ruleID, Message: msgCommentMissing},
		{Name: "user_id", Rules: ruleID, Message: msgDeleteAuthorOnly},
		{Name: "password", Rules: rulePassword, Message: msgPasswordIncorrect},
	}
)
