package service

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/settleflow/settleflow/internal/models"
	"github.com/settleflow/settleflow/internal/storage"
)

// GroupService handles group CRUD and membership changes.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

type createGroupRequest struct {
	Name    string   `json:"name" binding:"required"`
	Members []string `json:"members" binding:"required,min=1"`
}

type addMembersRequest struct {
	Members []string `json:"members" binding:"required,min=1"`
}

// CreateGroup creates a new group.
func (s *GroupService) CreateGroup(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group := &models.Group{
		Name:    req.Name,
		Members: req.Members,
	}
	if err := s.store.CreateGroup(c.Request.Context(), group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create group"})
		return
	}

	slog.Info("Group created", "group_id", group.ID, "members_count", len(group.Members))
	c.JSON(http.StatusCreated, gin.H{"group": group})
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(c *gin.Context) {
	group, err := s.store.GetGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Error("GetGroup failed", "group_id", c.Param("id"), "error", err)
		respondStorageError(c, err, "group not found", "failed to load group")
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group})
}

// ListGroups retrieves all groups.
func (s *GroupService) ListGroups(c *gin.Context) {
	groups, err := s.store.ListGroups(c.Request.Context())
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list groups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// AddMembers adds members to an existing group.
func (s *GroupService) AddMembers(c *gin.Context) {
	var req addMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	groupID := c.Param("id")
	if err := s.store.AddGroupMembers(c.Request.Context(), groupID, req.Members); err != nil {
		slog.Error("AddMembers failed", "group_id", groupID, "error", err)
		respondStorageError(c, err, "group not found", "failed to add members")
		return
	}

	group, err := s.store.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		slog.Error("AddMembers: failed to reload group", "group_id", groupID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load group"})
		return
	}

	slog.Info("Members added", "group_id", groupID, "new_members", req.Members)
	c.JSON(http.StatusOK, gin.H{"group": group})
}

// RemoveMember removes a single member from a group.
func (s *GroupService) RemoveMember(c *gin.Context) {
	groupID := c.Param("id")
	member := c.Param("member")

	if err := s.store.RemoveGroupMember(c.Request.Context(), groupID, member); err != nil {
		slog.Error("RemoveMember failed", "group_id", groupID, "member", member, "error", err)
		respondStorageError(c, err, "member not found", "failed to remove member")
		return
	}

	slog.Info("Member removed", "group_id", groupID, "member", member)
	c.Status(http.StatusNoContent)
}

// DeleteGroup removes a group and everything attached to it.
func (s *GroupService) DeleteGroup(c *gin.Context) {
	groupID := c.Param("id")
	if err := s.store.DeleteGroup(c.Request.Context(), groupID); err != nil {
		slog.Error("DeleteGroup failed", "group_id", groupID, "error", err)
		respondStorageError(c, err, "group not found", "failed to delete group")
		return
	}

	slog.Info("Group deleted", "group_id", groupID)
	c.Status(http.StatusNoContent)
}
